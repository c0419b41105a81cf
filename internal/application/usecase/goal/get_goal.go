package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/projection"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// GoalOutput is a goal together with its derived projection and status.
type GoalOutput struct {
	Goal       *entity.Goal
	Projection *projection.Projection
	Status     *projection.Status
}

// GetGoalInput represents the input for goal retrieval.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	// ExtraAmount, when set, asks for a what-if impact of a one-off extra
	// contribution of that amount on the completion projection.
	ExtraAmount *float64
}

// GetGoalOutput represents the output of goal retrieval.
type GetGoalOutput struct {
	Goal        *GoalOutput
	ExtraImpact *projection.ExtraContributionImpact
}

// GetGoalUseCase handles single goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves a goal with its projection and schedule status attached.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	now := time.Now().UTC()
	EnsureCheckpoint(goal, now)

	proj := projection.CalculateProjection(goal.TargetAmount, goal.CurrentAmount, goal.MonthlyContribution, now)

	output := &GetGoalOutput{
		Goal: &GoalOutput{
			Goal:       goal,
			Projection: proj,
			Status:     projection.CalculateStatus(goal, now),
		},
	}
	if input.ExtraAmount != nil {
		output.ExtraImpact = projection.CalculateExtraContributionImpact(proj, *input.ExtraAmount, goal.MonthlyContribution, now)
	}

	return output, nil
}
