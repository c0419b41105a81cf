package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/recurrence"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for transaction listing.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time // Optional window start (inclusive)
	EndDate   *time.Time // Optional window end (inclusive)
	Category  string
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Occurrences []*entity.Occurrence
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	expander        *recurrence.Expander
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		expander:        recurrence.NewExpander(),
	}
}

// Execute lists the user's transactions as an expanded occurrence list:
// one-off records appear as themselves, recurring definitions are projected
// into their virtual occurrences, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var window *recurrence.Window
	if input.StartDate != nil || input.EndDate != nil {
		window = &recurrence.Window{}
		if input.StartDate != nil {
			window.Start = valueobject.CalendarDate(*input.StartDate)
		}
		if input.EndDate != nil {
			window.End = valueobject.CalendarDate(*input.EndDate)
		}
		if !window.Start.IsZero() && !window.End.IsZero() && window.End.Before(window.Start) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidWindow,
				"window end must not precede window start",
				domainerror.ErrInvalidWindow,
			)
		}
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
		Type:      input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	today := valueobject.CalendarDate(time.Now().UTC())
	occurrences := uc.expander.Expand(transactions, window, today)

	return &ListTransactionsOutput{
		Occurrences: occurrences,
	}, nil
}
