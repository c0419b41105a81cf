package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID              uuid.UUID
	Name                string
	TargetAmount        float64
	MonthlyContribution float64
	DueDate             *time.Time // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}

	if input.TargetAmount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.MonthlyContribution < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidMonthlyContribution,
			"monthly contribution must not be negative",
			domainerror.ErrInvalidMonthlyContribution,
		)
	}

	goal := entity.NewGoal(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.TargetAmount,
		input.MonthlyContribution,
		input.DueDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
