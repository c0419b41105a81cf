package projection

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

func goalWithCheckpoint(monthsAgo int, startAmount, currentAmount, monthlyContribution float64) *entity.Goal {
	start := today.AddDate(0, -monthsAgo, 0)
	return &entity.Goal{
		ID:                    uuid.New(),
		UserID:                uuid.New(),
		Name:                  "Emergency fund",
		TargetAmount:          5000,
		CurrentAmount:         currentAmount,
		MonthlyContribution:   monthlyContribution,
		ProjectionStartDate:   &start,
		ProjectionStartAmount: startAmount,
	}
}

func TestCalculateStatus(t *testing.T) {
	t.Run("no plan regardless of amounts", func(t *testing.T) {
		goal := goalWithCheckpoint(3, 0, 400, 0)
		status := CalculateStatus(goal, today)
		if status.Kind != StatusNoPlan {
			t.Errorf("expected no-plan, got %s", status.Kind)
		}
	})

	t.Run("no checkpoint means new", func(t *testing.T) {
		goal := goalWithCheckpoint(3, 0, 400, 100)
		goal.ProjectionStartDate = nil
		status := CalculateStatus(goal, today)
		if status.Kind != StatusNew {
			t.Errorf("expected new, got %s", status.Kind)
		}
	})

	t.Run("checkpoint younger than a month means new", func(t *testing.T) {
		start := today.AddDate(0, 0, -10)
		goal := goalWithCheckpoint(0, 0, 400, 100)
		goal.ProjectionStartDate = &start
		status := CalculateStatus(goal, today)
		if status.Kind != StatusNew {
			t.Errorf("expected new, got %s", status.Kind)
		}
	})

	t.Run("ahead of schedule", func(t *testing.T) {
		// Expected after 3 months at 100/month: 300. Current 400 = +33%.
		goal := goalWithCheckpoint(3, 0, 400, 100)
		status := CalculateStatus(goal, today)

		if status.Kind != StatusAhead {
			t.Fatalf("expected ahead, got %s", status.Kind)
		}
		if status.Difference != 100 {
			t.Errorf("expected difference 100, got %v", status.Difference)
		}
		if status.MonthsSaved != 1 {
			t.Errorf("expected 1 month saved, got %d", status.MonthsSaved)
		}
	})

	t.Run("behind schedule", func(t *testing.T) {
		// Expected 300, current 150 = -50%.
		goal := goalWithCheckpoint(3, 0, 150, 100)
		status := CalculateStatus(goal, today)

		if status.Kind != StatusBehind {
			t.Fatalf("expected behind, got %s", status.Kind)
		}
		if status.Difference != 150 {
			t.Errorf("expected difference 150, got %v", status.Difference)
		}
		if status.MonthsBehind != 1 {
			t.Errorf("expected 1 month behind, got %d", status.MonthsBehind)
		}
	})

	t.Run("inside the band is on-track", func(t *testing.T) {
		// Expected 300, current 310 = +3.3%.
		goal := goalWithCheckpoint(3, 0, 310, 100)
		status := CalculateStatus(goal, today)
		if status.Kind != StatusOnTrack {
			t.Errorf("expected on-track, got %s", status.Kind)
		}
	})

	t.Run("band boundary counts as ahead", func(t *testing.T) {
		// Expected 300, current 330 = exactly +10%.
		goal := goalWithCheckpoint(3, 0, 330, 100)
		status := CalculateStatus(goal, today)
		if status.Kind != StatusAhead {
			t.Errorf("expected ahead at +10%%, got %s", status.Kind)
		}
	})

	t.Run("checkpoint amount shifts the trajectory", func(t *testing.T) {
		// Re-anchored at 500 three months ago: expected 800, current 820.
		goal := goalWithCheckpoint(3, 500, 820, 100)
		status := CalculateStatus(goal, today)
		if status.Kind != StatusOnTrack {
			t.Errorf("expected on-track, got %s", status.Kind)
		}
	})
}
