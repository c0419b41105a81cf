package goal

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func activeGoal(target, current, monthly float64) *entity.Goal {
	start := today.AddDate(0, -3, 0)
	g := &entity.Goal{
		ID:                    uuid.New(),
		UserID:                uuid.New(),
		Name:                  "Emergency fund",
		TargetAmount:          target,
		MonthlyContribution:   monthly,
		ProjectionStartDate:   &start,
		ProjectionStartAmount: 0,
		CreatedAt:             start,
		UpdatedAt:             start,
	}
	if current != 0 {
		g.Contributions = []entity.Contribution{{Date: start, Amount: current}}
		g.CurrentAmount = current
	}
	return g
}

func TestApplyContribution(t *testing.T) {
	t.Run("appends contribution and recomputes current amount", func(t *testing.T) {
		g := activeGoal(1000, 200, 100)

		updated, events, err := ApplyContribution(g, entity.Contribution{Amount: 150, Note: "bonus"}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Contributions) != 2 {
			t.Fatalf("expected 2 contributions, got %d", len(updated.Contributions))
		}
		if updated.CurrentAmount != 350 {
			t.Errorf("expected current amount 350, got %v", updated.CurrentAmount)
		}
		if len(events) != 0 {
			t.Errorf("expected no events, got %v", events)
		}
	})

	t.Run("re-anchors checkpoint at post-contribution amount", func(t *testing.T) {
		g := activeGoal(1000, 200, 100)

		updated, _, err := ApplyContribution(g, entity.Contribution{Amount: 100}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ProjectionStartDate == nil || !updated.ProjectionStartDate.Equal(today) {
			t.Errorf("expected checkpoint date %v, got %v", today, updated.ProjectionStartDate)
		}
		if updated.ProjectionStartAmount != 300 {
			t.Errorf("expected checkpoint amount 300, got %v", updated.ProjectionStartAmount)
		}
	})

	t.Run("does not mutate the input goal", func(t *testing.T) {
		g := activeGoal(1000, 200, 100)
		originalAmount := g.CurrentAmount
		originalLen := len(g.Contributions)
		originalAnchor := *g.ProjectionStartDate

		if _, _, err := ApplyContribution(g, entity.Contribution{Amount: 100}, today); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.CurrentAmount != originalAmount || len(g.Contributions) != originalLen {
			t.Error("input goal was mutated")
		}
		if !g.ProjectionStartDate.Equal(originalAnchor) {
			t.Error("input goal checkpoint was mutated")
		}
	})

	t.Run("crossing the target emits a completion event", func(t *testing.T) {
		g := activeGoal(1000, 900, 100)

		updated, events, err := ApplyContribution(g, entity.Contribution{Amount: 150}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Type != entity.GoalEventCompleted {
			t.Fatalf("expected one goal_completed event, got %v", events)
		}
		if updated.CompletedAt == nil || !updated.CompletedAt.Equal(today) {
			t.Errorf("expected completedAt %v, got %v", today, updated.CompletedAt)
		}
	})

	t.Run("contribution to an already completed goal emits nothing", func(t *testing.T) {
		g := activeGoal(1000, 1200, 100)
		completedAt := today.AddDate(0, -1, 0)
		g.CompletedAt = &completedAt

		updated, events, err := ApplyContribution(g, entity.Contribution{Amount: 50}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected no events, got %v", events)
		}
		if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
			t.Errorf("completedAt should be preserved, got %v", updated.CompletedAt)
		}
	})

	t.Run("withdrawal below target reopens a completed goal", func(t *testing.T) {
		g := activeGoal(1000, 1100, 100)
		completedAt := today.AddDate(0, -1, 0)
		g.CompletedAt = &completedAt

		updated, events, err := ApplyContribution(g, entity.Contribution{Amount: -300}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Type != entity.GoalEventReopened {
			t.Fatalf("expected one goal_reopened event, got %v", events)
		}
		if updated.CompletedAt != nil {
			t.Errorf("expected completedAt cleared, got %v", updated.CompletedAt)
		}
		if updated.CurrentAmount != 800 {
			t.Errorf("expected current amount 800, got %v", updated.CurrentAmount)
		}
	})

	t.Run("current amount is clamped at zero", func(t *testing.T) {
		g := activeGoal(1000, 100, 100)

		updated, _, err := ApplyContribution(g, entity.Contribution{Amount: -500}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CurrentAmount != 0 {
			t.Errorf("expected current amount 0, got %v", updated.CurrentAmount)
		}
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		g := activeGoal(1000, 100, 100)

		_, _, err := ApplyContribution(g, entity.Contribution{Amount: 0}, today)
		if !errors.Is(err, domainerror.ErrInvalidContributionAmount) {
			t.Errorf("expected ErrInvalidContributionAmount, got %v", err)
		}
	})

	t.Run("archived goal rejects contributions", func(t *testing.T) {
		g := activeGoal(1000, 1000, 100)
		g.Archived = true

		_, _, err := ApplyContribution(g, entity.Contribution{Amount: 100}, today)
		if !errors.Is(err, domainerror.ErrGoalArchived) {
			t.Errorf("expected ErrGoalArchived, got %v", err)
		}
	})

	t.Run("zero contribution date defaults to today", func(t *testing.T) {
		g := activeGoal(1000, 0, 100)

		updated, _, err := ApplyContribution(g, entity.Contribution{Amount: 100}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := updated.Contributions[len(updated.Contributions)-1]
		if !last.Date.Equal(today) {
			t.Errorf("expected contribution date %v, got %v", today, last.Date)
		}
	})
}
