package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	IsRecurring bool            `json:"is_recurring,omitempty"`
	Frequency   *string         `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	EndDate     *string         `json:"end_date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date         *string          `json:"date,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Type         *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Category     *string          `json:"category,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	IsRecurring  *bool            `json:"is_recurring,omitempty"`
	Frequency    *string          `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	EndDate      *string          `json:"end_date,omitempty"`
	ClearEndDate bool             `json:"clear_end_date,omitempty"`
}

// TransactionResponse represents a stored transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	IsRecurring bool            `json:"is_recurring"`
	Frequency   string          `json:"frequency,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OccurrenceResponse represents one calendar-dated occurrence in API responses.
type OccurrenceResponse struct {
	TransactionResponse

	VirtualOccurrence bool    `json:"virtual_occurrence"`
	OccurrenceNumber  int     `json:"occurrence_number,omitempty"`
	ParentID          *string `json:"parent_id,omitempty"`
	IsPast            bool    `json:"is_past"`
}

// OccurrenceListResponse represents the response for listing transactions.
type OccurrenceListResponse struct {
	Transactions []OccurrenceResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Date:        t.Date.Format(time.DateOnly),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Notes:       t.Notes,
		IsRecurring: t.IsRecurring,
		Frequency:   string(t.Frequency),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.EndDate != nil {
		dateStr := t.EndDate.Format(time.DateOnly)
		response.EndDate = &dateStr
	}

	return response
}

// ToOccurrenceResponse converts a domain Occurrence to an OccurrenceResponse DTO.
func ToOccurrenceResponse(occ *entity.Occurrence) OccurrenceResponse {
	response := OccurrenceResponse{
		TransactionResponse: ToTransactionResponse(&occ.Transaction),
		VirtualOccurrence:   occ.VirtualOccurrence,
		OccurrenceNumber:    occ.OccurrenceNumber,
		IsPast:              occ.IsPast,
	}

	if occ.ParentID != nil {
		parentID := occ.ParentID.String()
		response.ParentID = &parentID
	}

	return response
}

// ToOccurrenceListResponse converts a list of Occurrences to an OccurrenceListResponse.
func ToOccurrenceListResponse(occurrences []*entity.Occurrence) OccurrenceListResponse {
	out := make([]OccurrenceResponse, len(occurrences))
	for i, occ := range occurrences {
		out[i] = ToOccurrenceResponse(occ)
	}
	return OccurrenceListResponse{
		Transactions: out,
	}
}
