// Package projection computes savings-goal completion projections and
// schedule-adherence classification. Everything in this package is pure: no
// I/O, no persistence, deterministic given the inputs and a supplied "today".
package projection

import (
	"math"
	"time"
)

// Projection describes how long a goal needs to reach its target at the
// planned monthly contribution.
type Projection struct {
	Remaining    float64
	MonthsNeeded int
	Years        int
	Months       int
	ExpectedDate *time.Time // nil when no plan or already complete
	IsComplete   bool
}

// CalculateProjection projects the completion of a goal from its target,
// current amount and planned monthly contribution.
//
// With no plan (monthlyContribution <= 0) or nothing remaining the result is
// zeroed, with IsComplete reflecting whether the target is reached.
func CalculateProjection(targetAmount, currentAmount, monthlyContribution float64, today time.Time) *Projection {
	remaining := math.Max(0, targetAmount-currentAmount)

	if monthlyContribution <= 0 || remaining <= 0 {
		return &Projection{
			Remaining:  remaining,
			IsComplete: remaining <= 0,
		}
	}

	monthsNeeded := int(math.Ceil(remaining / monthlyContribution))
	expectedDate := today.AddDate(0, monthsNeeded, 0)

	return &Projection{
		Remaining:    remaining,
		MonthsNeeded: monthsNeeded,
		Years:        monthsNeeded / 12,
		Months:       monthsNeeded % 12,
		ExpectedDate: &expectedDate,
	}
}

// ExtraContributionImpact describes how a one-off extra contribution moves a
// goal's expected completion.
type ExtraContributionImpact struct {
	MonthsSaved      int
	NewMonthsNeeded  int
	NewExpectedDate  time.Time
	Improvement      bool
}

// CalculateExtraContributionImpact recomputes a projection as if an extra
// one-off amount were contributed today. Returns nil when there is no current
// projection or no active plan to measure against.
func CalculateExtraContributionImpact(current *Projection, extraAmount, monthlyContribution float64, today time.Time) *ExtraContributionImpact {
	if current == nil || monthlyContribution <= 0 {
		return nil
	}

	newRemaining := math.Max(0, current.Remaining-extraAmount)
	newMonthsNeeded := int(math.Ceil(newRemaining / monthlyContribution))
	monthsSaved := current.MonthsNeeded - newMonthsNeeded

	return &ExtraContributionImpact{
		MonthsSaved:     monthsSaved,
		NewMonthsNeeded: newMonthsNeeded,
		NewExpectedDate: today.AddDate(0, newMonthsNeeded, 0),
		Improvement:     monthsSaved > 0,
	}
}
