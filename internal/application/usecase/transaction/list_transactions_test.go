package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

func storedTransaction(userID uuid.UUID, day time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        day,
		Description: "Stored transaction",
		Amount:      decimal.NewFromInt(42),
		Type:        entity.TransactionTypeExpense,
	}
}

func TestListTransactions_OneSidedWindows(t *testing.T) {
	userID := uuid.New()
	today := time.Now().UTC()

	t.Run("start date alone keeps future transactions", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		future := storedTransaction(userID, today.AddDate(0, 1, 0))
		if err := repo.Create(context.Background(), future); err != nil {
			t.Fatal(err)
		}

		start := today.AddDate(0, 0, -1)
		uc := NewListTransactionsUseCase(repo)
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:    userID,
			StartDate: &start,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Occurrences) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(output.Occurrences))
		}
		if output.Occurrences[0].ID != future.ID {
			t.Error("expected the future-dated transaction to be listed")
		}
	})

	t.Run("end date alone keeps past transactions", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		past := storedTransaction(userID, today.AddDate(0, -1, 0))
		if err := repo.Create(context.Background(), past); err != nil {
			t.Fatal(err)
		}

		end := today
		uc := NewListTransactionsUseCase(repo)
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:  userID,
			EndDate: &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Occurrences) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(output.Occurrences))
		}
		if output.Occurrences[0].ID != past.ID {
			t.Error("expected the past transaction to be listed")
		}
	})
}

func TestListTransactions_InvertedWindowRejected(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := NewListTransactionsUseCase(repo)

	start := time.Now().UTC()
	end := start.AddDate(0, 0, -7)
	_, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID:    uuid.New(),
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil {
		t.Fatal("expected an error for an inverted window")
	}

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidWindow {
		t.Errorf("expected invalid window error, got %v", err)
	}
}
