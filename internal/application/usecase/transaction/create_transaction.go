// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
	Notes       string
	IsRecurring bool
	Frequency   entity.Frequency // Required iff IsRecurring
	EndDate     *time.Time       // Optional recurrence cutoff
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. Dates are normalized to calendar
// dates (midnight UTC) so recurrence arithmetic stays timezone-free.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Description, input.Notes, input.Type, input.Amount); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	frequency := input.Frequency
	var endDate *time.Time
	if input.IsRecurring {
		if frequency == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingFrequency,
				"recurring transaction requires a frequency",
				domainerror.ErrMissingFrequency,
			)
		}
		if !frequency.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		if input.EndDate != nil {
			d := valueobject.CalendarDate(*input.EndDate)
			if d.Before(valueobject.CalendarDate(input.Date)) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeEndDateBeforeStart,
					"end date must not precede the transaction date",
					domainerror.ErrEndDateBeforeStart,
				)
			}
			endDate = &d
		}
	} else {
		// Recurrence fields are meaningless on a one-off record.
		frequency = ""
	}

	transaction := entity.NewTransaction(
		input.UserID,
		valueobject.CalendarDate(input.Date),
		input.Description,
		input.Amount,
		input.Type,
		input.Category,
		input.Notes,
		input.IsRecurring,
		frequency,
		endDate,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// validateTransactionFields checks the shared field constraints for create and update.
func validateTransactionFields(description, notes string, transactionType entity.TransactionType, amount decimal.Decimal) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
