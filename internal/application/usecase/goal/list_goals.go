package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/projection"
)

// ListGoalsInput represents the input for goal listing.
type ListGoalsInput struct {
	UserID          uuid.UUID
	IncludeArchived bool
}

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists the user's goals with projection and schedule status attached.
// Legacy goals missing a projection checkpoint are back-filled in memory and
// persisted best-effort so future reads skip the repair.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	output := make([]*GoalOutput, 0, len(goals))

	for _, g := range goals {
		if g.Archived && !input.IncludeArchived {
			continue
		}

		if EnsureCheckpoint(g, now) {
			// Fire-and-forget repair of legacy records. A failure here only
			// means the same back-fill runs again on the next read.
			if err := uc.goalRepo.UpdateProjectionCheckpoint(ctx, g.ID, *g); err != nil {
				slog.Warn("Failed to persist back-filled projection checkpoint",
					"goalID", g.ID,
					"error", err,
				)
			}
		}

		output = append(output, &GoalOutput{
			Goal:       g,
			Projection: projection.CalculateProjection(g.TargetAmount, g.CurrentAmount, g.MonthlyContribution, now),
			Status:     projection.CalculateStatus(g, now),
		})
	}

	return &ListGoalsOutput{
		Goals: output,
	}, nil
}
