package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID              uuid.UUID
	UserID              uuid.UUID
	Name                *string    // Optional
	TargetAmount        *float64   // Optional
	MonthlyContribution *float64   // Optional
	DueDate             *time.Time // Optional
	ClearDueDate        bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update. A change to the savings plan (target or
// monthly contribution) re-anchors the projection checkpoint at the current
// amount, so schedule status is measured against the new plan from today.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if goal.Archived {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalArchived,
			"cannot modify an archived goal",
			domainerror.ErrGoalArchived,
		)
	}

	planChanged := false

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalName,
				"goal name is required",
				domainerror.ErrMissingGoalName,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		if *input.TargetAmount != goal.TargetAmount {
			goal.TargetAmount = *input.TargetAmount
			planChanged = true
		}
	}

	if input.MonthlyContribution != nil {
		if *input.MonthlyContribution < 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidMonthlyContribution,
				"monthly contribution must not be negative",
				domainerror.ErrInvalidMonthlyContribution,
			)
		}
		if *input.MonthlyContribution != goal.MonthlyContribution {
			goal.MonthlyContribution = *input.MonthlyContribution
			planChanged = true
		}
	}

	if input.ClearDueDate {
		goal.DueDate = nil
	} else if input.DueDate != nil {
		goal.DueDate = input.DueDate
	}

	now := time.Now().UTC()

	if planChanged {
		anchor := now
		goal.ProjectionStartDate = &anchor
		goal.ProjectionStartAmount = goal.CurrentAmount
	}

	// A lowered target can complete the goal; a raised one can reopen it.
	switch {
	case goal.CompletedAt == nil && goal.IsComplete():
		goal.CompletedAt = &now
	case goal.CompletedAt != nil && !goal.IsComplete():
		goal.CompletedAt = nil
	}

	goal.UpdatedAt = now

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
