package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// RestartGoalInput represents the input for restarting a goal.
type RestartGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// RestartGoalOutput represents the output of restarting a goal.
type RestartGoalOutput struct {
	Goal *entity.Goal
}

// RestartGoalUseCase handles goal restart logic.
type RestartGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewRestartGoalUseCase creates a new RestartGoalUseCase instance.
func NewRestartGoalUseCase(goalRepo adapter.GoalRepository) *RestartGoalUseCase {
	return &RestartGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute restarts a goal from zero: progress and contribution history are
// cleared, lifecycle flags reset, and the projection checkpoint re-anchored
// at zero as of now.
func (uc *RestartGoalUseCase) Execute(ctx context.Context, input RestartGoalInput) (*RestartGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	now := time.Now().UTC()
	goal.CurrentAmount = 0
	goal.Contributions = []entity.Contribution{}
	goal.Archived = false
	goal.ArchivedAt = nil
	goal.CompletedAt = nil
	goal.ProjectionStartDate = &now
	goal.ProjectionStartAmount = 0
	goal.UpdatedAt = now

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to restart goal: %w", err)
	}

	return &RestartGoalOutput{
		Goal: goal,
	}, nil
}
