package projection

import (
	"math"
	"time"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// StatusKind classifies a goal's progress against its expected linear
// trajectory.
type StatusKind string

const (
	StatusNoPlan  StatusKind = "no-plan"
	StatusNew     StatusKind = "new"
	StatusAhead   StatusKind = "ahead"
	StatusOnTrack StatusKind = "on-track"
	StatusBehind  StatusKind = "behind"
)

const (
	// scheduleBandPercent is the ± band around the expected amount inside
	// which a goal counts as on-track. The band keeps the classification from
	// flapping on rounding noise or a single day's timing variance.
	scheduleBandPercent = 10.0

	// daysPerMonth is the mean Gregorian month length used to count whole
	// months elapsed since the projection checkpoint.
	daysPerMonth = 30.44
)

// Status is the schedule-adherence classification of a goal, with the
// magnitude of the deviation when ahead or behind.
type Status struct {
	Kind         StatusKind
	Difference   float64 // absolute amount ahead/behind the expected trajectory
	MonthsSaved  int     // whole contribution-months ahead (Kind == ahead)
	MonthsBehind int     // whole contribution-months behind (Kind == behind)
}

// CalculateStatus classifies a goal's progress as ahead, behind or on-track
// against the linear trajectory anchored at its projection checkpoint.
//
// A goal without an active plan is "no-plan"; a goal without a checkpoint, or
// whose checkpoint is less than one month old, is "new".
func CalculateStatus(goal *entity.Goal, today time.Time) *Status {
	if goal.MonthlyContribution <= 0 {
		return &Status{Kind: StatusNoPlan}
	}

	if goal.ProjectionStartDate == nil {
		return &Status{Kind: StatusNew}
	}

	monthsSinceStart := int(math.Floor(today.Sub(*goal.ProjectionStartDate).Hours() / (24 * daysPerMonth)))
	if monthsSinceStart < 1 {
		return &Status{Kind: StatusNew}
	}

	expectedAmount := goal.ProjectionStartAmount + goal.MonthlyContribution*float64(monthsSinceStart)
	difference := goal.CurrentAmount - expectedAmount
	percentDiff := difference / expectedAmount * 100

	switch {
	case percentDiff >= scheduleBandPercent:
		return &Status{
			Kind:        StatusAhead,
			Difference:  math.Abs(difference),
			MonthsSaved: int(math.Floor(math.Abs(difference) / goal.MonthlyContribution)),
		}
	case percentDiff <= -scheduleBandPercent:
		return &Status{
			Kind:         StatusBehind,
			Difference:   math.Abs(difference),
			MonthsBehind: int(math.Floor(math.Abs(difference) / goal.MonthlyContribution)),
		}
	default:
		return &Status{Kind: StatusOnTrack}
	}
}
