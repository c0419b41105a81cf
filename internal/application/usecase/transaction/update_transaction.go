package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time              // Optional
	Description   *string                 // Optional
	Amount        *decimal.Decimal        // Optional
	Type          *entity.TransactionType // Optional
	Category      *string                 // Optional
	Notes         *string                 // Optional
	IsRecurring   *bool                   // Optional
	Frequency     *entity.Frequency       // Optional
	EndDate       *time.Time              // Optional
	ClearEndDate  bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update. Editing a recurring definition
// changes every occurrence projected from it; there is no per-occurrence
// override.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedToModifyTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = valueobject.CalendarDate(*input.Date)
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}
	if input.IsRecurring != nil {
		transaction.IsRecurring = *input.IsRecurring
	}
	if input.Frequency != nil {
		transaction.Frequency = *input.Frequency
	}
	if input.ClearEndDate {
		transaction.EndDate = nil
	} else if input.EndDate != nil {
		d := valueobject.CalendarDate(*input.EndDate)
		transaction.EndDate = &d
	}

	if err := validateTransactionFields(transaction.Description, transaction.Notes, transaction.Type, transaction.Amount); err != nil {
		return nil, err
	}

	if transaction.IsRecurring {
		if transaction.Frequency == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingFrequency,
				"recurring transaction requires a frequency",
				domainerror.ErrMissingFrequency,
			)
		}
		if !transaction.Frequency.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly', 'monthly', or 'yearly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		if transaction.EndDate != nil && transaction.EndDate.Before(transaction.Date) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEndDateBeforeStart,
				"end date must not precede the transaction date",
				domainerror.ErrEndDateBeforeStart,
			)
		}
	} else {
		transaction.Frequency = ""
		transaction.EndDate = nil
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
