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

// ArchiveGoalInput represents the input for goal archival.
type ArchiveGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ArchiveGoalOutput represents the output of goal archival.
type ArchiveGoalOutput struct {
	Goal *entity.Goal
}

// ArchiveGoalUseCase handles goal archival logic.
type ArchiveGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewArchiveGoalUseCase creates a new ArchiveGoalUseCase instance.
func NewArchiveGoalUseCase(goalRepo adapter.GoalRepository) *ArchiveGoalUseCase {
	return &ArchiveGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute archives a completed goal. Archived goals are hidden from the
// default listing and reject further modification until restarted.
func (uc *ArchiveGoalUseCase) Execute(ctx context.Context, input ArchiveGoalInput) (*ArchiveGoalOutput, error) {
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
			"goal is already archived",
			domainerror.ErrGoalArchived,
		)
	}

	if !goal.IsComplete() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotArchivable,
			"only completed goals can be archived",
			domainerror.ErrGoalNotArchivable,
		)
	}

	now := time.Now().UTC()
	goal.Archived = true
	goal.ArchivedAt = &now
	goal.UpdatedAt = now

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to archive goal: %w", err)
	}

	return &ArchiveGoalOutput{
		Goal: goal,
	}, nil
}
