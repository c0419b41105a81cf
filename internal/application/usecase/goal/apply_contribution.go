// Package goal contains goal-related use cases.
package goal

import (
	"time"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// ApplyContribution applies a contribution to a goal and returns the new goal
// state plus any domain events produced by the transition. The input goal is
// never mutated.
//
// CurrentAmount is recomputed as the sum of the contribution history, and the
// projection checkpoint is re-anchored at the new amount so the expected
// trajectory restarts from today.
func ApplyContribution(g *entity.Goal, contribution entity.Contribution, today time.Time) (*entity.Goal, []entity.GoalEvent, error) {
	if g.Archived {
		return nil, nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalArchived,
			"cannot contribute to an archived goal",
			domainerror.ErrGoalArchived,
		)
	}
	if contribution.Amount == 0 {
		return nil, nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContributionAmount,
			"contribution amount must be non-zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	updated := g.Clone()
	wasComplete := updated.IsComplete()

	if contribution.Date.IsZero() {
		contribution.Date = today
	}
	updated.Contributions = append(updated.Contributions, contribution)

	total := 0.0
	for _, c := range updated.Contributions {
		total += c.Amount
	}
	if total < 0 {
		total = 0
	}
	updated.CurrentAmount = total

	// Re-anchor the checkpoint: progress from here on is measured against
	// the post-contribution amount.
	anchor := today
	updated.ProjectionStartDate = &anchor
	updated.ProjectionStartAmount = updated.CurrentAmount
	updated.UpdatedAt = today

	var events []entity.GoalEvent
	switch {
	case !wasComplete && updated.IsComplete():
		completedAt := today
		updated.CompletedAt = &completedAt
		events = append(events, entity.GoalEvent{
			Type:       entity.GoalEventCompleted,
			GoalID:     updated.ID,
			UserID:     updated.UserID,
			OccurredAt: today,
		})
	case wasComplete && !updated.IsComplete():
		updated.CompletedAt = nil
		events = append(events, entity.GoalEvent{
			Type:       entity.GoalEventReopened,
			GoalID:     updated.ID,
			UserID:     updated.UserID,
			OccurredAt: today,
		})
	}

	return updated, events, nil
}
