// Package recurrence expands recurring transaction definitions into the
// concrete calendar occurrences visible in a viewing window. Everything in
// this package is pure: no I/O, no persistence, deterministic given the
// inputs and a supplied "today".
package recurrence

import (
	"time"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// NextCycleDate adds n whole cycles of the given frequency to start.
// Monthly and yearly cycles follow standard calendar rules: a day-of-month
// that does not exist in the target month carries into the next one
// (Jan 31 + 1 month = Mar 2/3).
//
// Dates are timezone-naive calendar dates at midnight UTC; callers must not
// feed values parsed through a timezone-sensitive path.
func NextCycleDate(start time.Time, frequency entity.Frequency, n int) time.Time {
	switch frequency {
	case entity.FrequencyDaily:
		return start.AddDate(0, 0, n)
	case entity.FrequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case entity.FrequencyMonthly:
		return start.AddDate(0, n, 0)
	case entity.FrequencyYearly:
		return start.AddDate(n, 0, 0)
	}
	return start
}
