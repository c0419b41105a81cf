package recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

func recurringTransaction(day time.Time, frequency entity.Frequency) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Date:        day,
		Description: "Gym membership",
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		Category:    "Health",
		IsRecurring: true,
		Frequency:   frequency,
	}
}

func TestExpand_MonthlyRecurrence(t *testing.T) {
	today := date(2024, time.June, 1)
	txn := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)

	expander := NewExpanderWithBounds(1, 3)
	result := expander.Expand([]*entity.Transaction{txn}, nil, today)

	// Anchor cycle is 5 (2024-06-15, the first on/after today), so the
	// generated range is cycles 4 through 8 plus the literal record.
	wantDates := []time.Time{
		date(2024, time.September, 15),
		date(2024, time.August, 15),
		date(2024, time.July, 15),
		date(2024, time.June, 15),
		date(2024, time.May, 15),
		date(2024, time.January, 15),
	}

	if len(result) != len(wantDates) {
		t.Fatalf("expected %d occurrences, got %d", len(wantDates), len(result))
	}

	for i, want := range wantDates {
		if !result[i].Date.Equal(want) {
			t.Errorf("occurrence %d: expected date %v, got %v", i, want, result[i].Date)
		}
	}

	t.Run("literal record is not virtual", func(t *testing.T) {
		literal := result[len(result)-1]
		if literal.VirtualOccurrence {
			t.Error("expected literal record to have VirtualOccurrence=false")
		}
		if literal.OccurrenceNumber != 0 {
			t.Errorf("expected literal occurrence number 0, got %d", literal.OccurrenceNumber)
		}
		if literal.ID != txn.ID {
			t.Error("expected literal record to keep its stored ID")
		}
	})

	t.Run("virtual occurrences carry parent link and cycle index", func(t *testing.T) {
		mayOccurrence := result[4] // 2024-05-15, cycle 4
		if !mayOccurrence.VirtualOccurrence {
			t.Fatal("expected virtual occurrence")
		}
		if mayOccurrence.OccurrenceNumber != 4 {
			t.Errorf("expected occurrence number 4, got %d", mayOccurrence.OccurrenceNumber)
		}
		if mayOccurrence.ParentID == nil || *mayOccurrence.ParentID != txn.ID {
			t.Error("expected parent link back to the recurring definition")
		}
		if mayOccurrence.ID != uuid.Nil {
			t.Error("expected virtual occurrence to have no stored ID")
		}
	})

	t.Run("isPast reflects occurrence date against today", func(t *testing.T) {
		if !result[4].IsPast { // 2024-05-15
			t.Error("expected 2024-05-15 to be past")
		}
		if result[3].IsPast { // 2024-06-15
			t.Error("expected 2024-06-15 to be future")
		}
	})
}

func TestExpand_Boundedness(t *testing.T) {
	// A daily rule from long ago must still produce a bounded result.
	txn := recurringTransaction(date(2022, time.January, 1), entity.FrequencyDaily)
	today := date(2024, time.June, 1)

	expander := NewExpander()
	result := expander.Expand([]*entity.Transaction{txn}, nil, today)

	maxOccurrences := DefaultPastCycles + DefaultMaxFuture + 1
	if len(result) > maxOccurrences {
		t.Errorf("expected at most %d occurrences, got %d", maxOccurrences, len(result))
	}
}

func TestExpand_WindowContainment(t *testing.T) {
	txn := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
	today := date(2024, time.June, 1)
	window := &Window{
		Start: date(2024, time.June, 1),
		End:   date(2024, time.August, 31),
	}

	result := NewExpander().Expand([]*entity.Transaction{txn}, window, today)

	if len(result) == 0 {
		t.Fatal("expected occurrences inside the window")
	}
	for _, occ := range result {
		if !window.Contains(occ.Date) {
			t.Errorf("occurrence %v falls outside window", occ.Date)
		}
	}

	t.Run("literal record outside window is excluded", func(t *testing.T) {
		for _, occ := range result {
			if !occ.VirtualOccurrence {
				t.Errorf("expected no literal record (2024-01-15 is outside window), got one at %v", occ.Date)
			}
		}
	})

	t.Run("occurrences before window start are skipped not stopped", func(t *testing.T) {
		// Cycle 4 (2024-05-15) precedes the window but cycles 5..7 must
		// still be generated.
		var dates []time.Time
		for _, occ := range result {
			dates = append(dates, occ.Date)
		}
		want := []time.Time{
			date(2024, time.August, 15),
			date(2024, time.July, 15),
			date(2024, time.June, 15),
		}
		if len(dates) != len(want) {
			t.Fatalf("expected %d occurrences, got %d: %v", len(want), len(dates), dates)
		}
		for i := range want {
			if !dates[i].Equal(want[i]) {
				t.Errorf("occurrence %d: expected %v, got %v", i, want[i], dates[i])
			}
		}
	})
}

func TestExpand_OpenEndedWindows(t *testing.T) {
	today := date(2024, time.June, 1)

	t.Run("start-only window keeps future occurrences", func(t *testing.T) {
		oneOff := &entity.Transaction{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Date:   date(2024, time.September, 28),
			Amount: decimal.NewFromInt(20),
			Type:   entity.TransactionTypeExpense,
		}
		recurring := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
		window := &Window{Start: date(2024, time.May, 31)}

		result := NewExpander().Expand([]*entity.Transaction{oneOff, recurring}, window, today)

		if len(result) == 0 {
			t.Fatal("expected occurrences for a start-only window")
		}

		foundOneOff := false
		for _, occ := range result {
			if occ.Date.Before(window.Start) {
				t.Errorf("occurrence %v precedes window start", occ.Date)
			}
			if !occ.VirtualOccurrence && occ.Date.Equal(oneOff.Date) {
				foundOneOff = true
			}
		}
		if !foundOneOff {
			t.Error("expected the future-dated one-off record to be kept")
		}
	})

	t.Run("end-only window keeps past occurrences", func(t *testing.T) {
		recurring := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
		window := &Window{End: date(2024, time.June, 30)}

		result := NewExpander().Expand([]*entity.Transaction{recurring}, window, today)

		// Cycles 3..5 plus the literal January record; cycle 6 (July 15)
		// exceeds the end bound.
		want := []time.Time{
			date(2024, time.June, 15),
			date(2024, time.May, 15),
			date(2024, time.April, 15),
			date(2024, time.January, 15),
		}
		if len(result) != len(want) {
			t.Fatalf("expected %d occurrences, got %d", len(want), len(result))
		}
		for i := range want {
			if !result[i].Date.Equal(want[i]) {
				t.Errorf("occurrence %d: expected %v, got %v", i, want[i], result[i].Date)
			}
		}
	})
}

func TestExpand_EndDateRespected(t *testing.T) {
	endDate := date(2024, time.July, 1)
	txn := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
	txn.EndDate = &endDate
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{txn}, nil, today)

	for _, occ := range result {
		if occ.Date.After(endDate) {
			t.Errorf("occurrence %v exceeds end date %v", occ.Date, endDate)
		}
	}
}

func TestExpand_EndDateInThePast(t *testing.T) {
	endDate := date(2024, time.March, 1)
	txn := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
	txn.EndDate = &endDate
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{txn}, nil, today)

	for _, occ := range result {
		if occ.VirtualOccurrence && !occ.IsPast {
			t.Errorf("expected no future occurrences past end date, got %v", occ.Date)
		}
	}
}

func TestExpand_NonRecurringPassesThrough(t *testing.T) {
	txn := &entity.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   date(2024, time.April, 3),
		Amount: decimal.NewFromInt(20),
		Type:   entity.TransactionTypeExpense,
	}
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{txn}, nil, today)

	if len(result) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(result))
	}
	if result[0].VirtualOccurrence {
		t.Error("expected literal record only")
	}
}

func TestExpand_MissingDateSkipsVirtualGeneration(t *testing.T) {
	txn := recurringTransaction(time.Time{}, entity.FrequencyMonthly)
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{txn}, nil, today)

	if len(result) != 0 {
		t.Errorf("expected no occurrences for recurring record without date, got %d", len(result))
	}
}

func TestExpand_InvalidFrequencySkipsVirtualGeneration(t *testing.T) {
	txn := recurringTransaction(date(2024, time.May, 1), entity.Frequency("hourly"))
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{txn}, nil, today)

	// The literal record survives; only virtual generation is skipped.
	if len(result) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(result))
	}
	if result[0].VirtualOccurrence {
		t.Error("expected only the literal record")
	}
}

func TestExpand_SortedDescendingWithStableTies(t *testing.T) {
	first := &entity.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   date(2024, time.May, 10),
		Amount: decimal.NewFromInt(10),
		Type:   entity.TransactionTypeExpense,
	}
	second := &entity.Transaction{
		ID:     uuid.New(),
		UserID: first.UserID,
		Date:   date(2024, time.May, 10),
		Amount: decimal.NewFromInt(30),
		Type:   entity.TransactionTypeIncome,
	}
	third := &entity.Transaction{
		ID:     uuid.New(),
		UserID: first.UserID,
		Date:   date(2024, time.May, 20),
		Amount: decimal.NewFromInt(5),
		Type:   entity.TransactionTypeExpense,
	}
	today := date(2024, time.June, 1)

	result := NewExpander().Expand([]*entity.Transaction{first, second, third}, nil, today)

	if len(result) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i].Date.After(result[i-1].Date) {
			t.Errorf("result not sorted descending at index %d", i)
		}
	}
	// Equal dates keep insertion order.
	if result[1].ID != first.ID || result[2].ID != second.ID {
		t.Error("expected ties to preserve insertion order")
	}
}

func TestExpand_Idempotence(t *testing.T) {
	endDate := date(2025, time.January, 1)
	txn := recurringTransaction(date(2024, time.January, 15), entity.FrequencyMonthly)
	txn.EndDate = &endDate
	today := date(2024, time.June, 1)
	expander := NewExpander()

	originalDate := txn.Date
	first := expander.Expand([]*entity.Transaction{txn}, nil, today)
	second := expander.Expand([]*entity.Transaction{txn}, nil, today)

	if !txn.Date.Equal(originalDate) {
		t.Error("expected input transaction to be unmodified")
	}
	if txn.EndDate == nil || !txn.EndDate.Equal(endDate) {
		t.Error("expected input end date to be unmodified")
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %d and %d occurrences", len(first), len(second))
	}
	for i := range first {
		if !first[i].Date.Equal(second[i].Date) ||
			first[i].OccurrenceNumber != second[i].OccurrenceNumber ||
			first[i].VirtualOccurrence != second[i].VirtualOccurrence ||
			first[i].IsPast != second[i].IsPast {
			t.Errorf("occurrence %d differs between runs", i)
		}
	}
}

func TestExpand_NilAndEmptyInput(t *testing.T) {
	today := date(2024, time.June, 1)
	expander := NewExpander()

	if got := expander.Expand(nil, nil, today); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d", len(got))
	}
	if got := expander.Expand([]*entity.Transaction{nil}, nil, today); len(got) != 0 {
		t.Errorf("expected nil transactions to be skipped, got %d", len(got))
	}
}
