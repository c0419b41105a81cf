package recurrence

import (
	"testing"
	"time"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextCycleDate(t *testing.T) {
	start := date(2024, time.January, 15)

	t.Run("daily adds n days", func(t *testing.T) {
		got := NextCycleDate(start, entity.FrequencyDaily, 3)
		if want := date(2024, time.January, 18); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("weekly adds 7n days", func(t *testing.T) {
		got := NextCycleDate(start, entity.FrequencyWeekly, 2)
		if want := date(2024, time.January, 29); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("monthly adds n calendar months", func(t *testing.T) {
		got := NextCycleDate(start, entity.FrequencyMonthly, 5)
		if want := date(2024, time.June, 15); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("monthly carries day-of-month overflow", func(t *testing.T) {
		// Jan 31 + 1 month lands in March because February has no 31st.
		got := NextCycleDate(date(2024, time.January, 31), entity.FrequencyMonthly, 1)
		if want := date(2024, time.March, 2); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("yearly adds n years", func(t *testing.T) {
		got := NextCycleDate(start, entity.FrequencyYearly, 2)
		if want := date(2026, time.January, 15); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("yearly handles leap day", func(t *testing.T) {
		got := NextCycleDate(date(2024, time.February, 29), entity.FrequencyYearly, 1)
		if want := date(2025, time.March, 1); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("zero cycles returns the start date", func(t *testing.T) {
		got := NextCycleDate(start, entity.FrequencyMonthly, 0)
		if !got.Equal(start) {
			t.Errorf("expected %v, got %v", start, got)
		}
	})

	t.Run("unknown frequency returns the start date", func(t *testing.T) {
		got := NextCycleDate(start, entity.Frequency("fortnightly"), 4)
		if !got.Equal(start) {
			t.Errorf("expected %v, got %v", start, got)
		}
	})
}
