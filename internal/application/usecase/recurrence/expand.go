package recurrence

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

const (
	// DefaultPastCycles is how many cycles before the current one are
	// generated, so recently elapsed occurrences stay visible.
	DefaultPastCycles = 2

	// DefaultMaxFuture is how many cycles past the current one are generated.
	DefaultMaxFuture = 12

	// anchorSearchLimit bounds the search for the current cycle anchor. A
	// daily rule would need a start date ~3 years in the past to hit it.
	anchorSearchLimit = 1000
)

// Window bounds the occurrences a caller wants to see. Both bounds are
// inclusive calendar dates; a zero bound leaves that side open.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date falls inside the window.
func (w *Window) Contains(date time.Time) bool {
	if !w.Start.IsZero() && date.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && date.After(w.End) {
		return false
	}
	return true
}

// Expander generates the real + virtual occurrence list for a set of
// transactions. The zero value is not usable; construct with NewExpander.
type Expander struct {
	pastCycles int
	maxFuture  int
}

// NewExpander creates an Expander with the default cycle bounds.
func NewExpander() *Expander {
	return &Expander{
		pastCycles: DefaultPastCycles,
		maxFuture:  DefaultMaxFuture,
	}
}

// NewExpanderWithBounds creates an Expander with custom cycle bounds.
func NewExpanderWithBounds(pastCycles, maxFuture int) *Expander {
	return &Expander{
		pastCycles: pastCycles,
		maxFuture:  maxFuture,
	}
}

// Expand produces the display-ready occurrence list for the given
// transactions: every literal stored record that falls in the window, plus
// virtual occurrences projected from each recurring definition. The result is
// sorted descending by effective date (ties keep insertion order) and is
// bounded to at most pastCycles+maxFuture+1 occurrences per record.
//
// Inputs are never mutated; occurrences are allocated fresh on every call.
func (e *Expander) Expand(transactions []*entity.Transaction, window *Window, today time.Time) []*entity.Occurrence {
	today = valueobject.CalendarDate(today)

	occurrences := make([]*entity.Occurrence, 0, len(transactions))

	for _, txn := range transactions {
		if txn == nil {
			continue
		}

		date := valueobject.CalendarDate(txn.Date)

		if !txn.Date.IsZero() && (window == nil || window.Contains(date)) {
			literal := &entity.Occurrence{
				Transaction: *txn,
				IsPast:      date.Before(today),
			}
			literal.Transaction.Date = date
			occurrences = append(occurrences, literal)
		}

		if txn.IsRecurring {
			occurrences = append(occurrences, e.generateVirtualOccurrences(txn, window, today)...)
		}
	}

	// Descending by effective date; stable so ties keep insertion order.
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Date.After(occurrences[j].Date)
	})

	return occurrences
}

// generateVirtualOccurrences projects the virtual occurrences of one
// recurring definition. Cycle index 0 is the anchor transaction itself and is
// never generated, so the literal record is not duplicated.
func (e *Expander) generateVirtualOccurrences(txn *entity.Transaction, window *Window, today time.Time) []*entity.Occurrence {
	if !txn.Frequency.IsValid() {
		slog.Warn("recurring transaction has no valid frequency, skipping virtual generation",
			"transaction_id", txn.ID,
			"frequency", string(txn.Frequency),
		)
		return nil
	}

	if txn.Date.IsZero() {
		slog.Warn("recurring transaction missing date field, skipping virtual generation",
			"transaction_id", txn.ID,
		)
		return nil
	}

	start := valueobject.CalendarDate(txn.Date)

	var endDate *time.Time
	if txn.EndDate != nil {
		d := valueobject.CalendarDate(*txn.EndDate)
		endDate = &d
	}

	// Current cycle anchor: smallest index whose date is not before today.
	currentCycle := 0
	for i := 0; i <= anchorSearchLimit; i++ {
		if !NextCycleDate(start, txn.Frequency, i).Before(today) {
			currentCycle = i
			break
		}
	}

	firstCycle := currentCycle - e.pastCycles
	if firstCycle < 1 {
		firstCycle = 1
	}
	lastCycle := currentCycle + e.maxFuture

	parentID := txn.ID
	instances := make([]*entity.Occurrence, 0, lastCycle-firstCycle+1)

	for i := firstCycle; i <= lastCycle; i++ {
		date := NextCycleDate(start, txn.Frequency, i)

		if endDate != nil && date.After(*endDate) {
			break
		}
		if window != nil {
			if !window.End.IsZero() && date.After(window.End) {
				break
			}
			if !window.Start.IsZero() && date.Before(window.Start) {
				continue
			}
		}

		occ := &entity.Occurrence{
			Transaction:       *txn,
			VirtualOccurrence: true,
			OccurrenceNumber:  i,
			ParentID:          &parentID,
			IsPast:            date.Before(today),
		}
		occ.Transaction.ID = uuid.Nil
		occ.Transaction.Date = date
		instances = append(instances, occ)
	}

	return instances
}
