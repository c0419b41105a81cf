package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for unit tests.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[uuid.UUID]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.FindByUser(context.Background(), filter.UserID)
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	baseInput := func() CreateTransactionInput {
		return CreateTransactionInput{
			UserID:      userID,
			Date:        date,
			Description: "Rent",
			Amount:      decimal.NewFromInt(1200),
			Type:        entity.TransactionTypeExpense,
			Category:    "housing",
		}
	}

	t.Run("creates a one-off transaction", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())

		out, err := uc.Execute(context.Background(), baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.IsRecurring {
			t.Error("expected one-off transaction")
		}
		if out.Transaction.Frequency != "" {
			t.Errorf("expected empty frequency, got %q", out.Transaction.Frequency)
		}
	})

	t.Run("normalizes the date to midnight UTC", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.Date = time.Date(2024, 6, 15, 17, 45, 12, 0, time.UTC)

		out, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.Date.Equal(date) {
			t.Errorf("expected %v, got %v", date, out.Transaction.Date)
		}
	})

	t.Run("recurring transaction requires a frequency", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.IsRecurring = true

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrMissingFrequency) {
			t.Errorf("expected ErrMissingFrequency, got %v", err)
		}
	})

	t.Run("rejects unsupported frequency", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.IsRecurring = true
		input.Frequency = "fortnightly"

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidFrequency) {
			t.Errorf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("rejects end date before the transaction date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.IsRecurring = true
		input.Frequency = entity.FrequencyMonthly
		end := date.AddDate(0, -1, 0)
		input.EndDate = &end

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrEndDateBeforeStart) {
			t.Errorf("expected ErrEndDateBeforeStart, got %v", err)
		}
	})

	t.Run("drops recurrence fields on a one-off", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.Frequency = entity.FrequencyMonthly

		out, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.Frequency != "" {
			t.Errorf("expected frequency dropped, got %q", out.Transaction.Frequency)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.Type = "transfer"

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.Amount = decimal.NewFromInt(-10)

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("rejects zero date", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeTransactionRepo())
		input := baseInput()
		input.Date = time.Time{}

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionDate) {
			t.Errorf("expected ErrInvalidTransactionDate, got %v", err)
		}
	})
}
