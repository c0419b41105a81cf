package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// ImportGoalsInput represents the input for importing legacy goal records.
type ImportGoalsInput struct {
	UserID uuid.UUID
	Goals  []entity.RawGoal
}

// ImportGoalsOutput represents the output of a legacy goal import.
type ImportGoalsOutput struct {
	Imported []*entity.Goal
}

// ImportGoalsUseCase imports goals from a legacy document export, normalizing
// the heterogeneous timestamp shapes the old app stored.
type ImportGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewImportGoalsUseCase creates a new ImportGoalsUseCase instance.
func NewImportGoalsUseCase(goalRepo adapter.GoalRepository) *ImportGoalsUseCase {
	return &ImportGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute normalizes and persists the exported records. The import is
// all-or-nothing per record: a failed record aborts with the count of goals
// already imported reflected in the error.
func (uc *ImportGoalsUseCase) Execute(ctx context.Context, input ImportGoalsInput) (*ImportGoalsOutput, error) {
	now := time.Now().UTC()
	normalized := NormalizeRawGoals(input.Goals, input.UserID, now)
	imported := make([]*entity.Goal, 0, len(normalized))

	for _, g := range normalized {
		if err := uc.goalRepo.Create(ctx, g); err != nil {
			return nil, fmt.Errorf("failed to import goal %q (%d of %d imported): %w",
				g.Name, len(imported), len(input.Goals), err)
		}
		imported = append(imported, g)
	}

	return &ImportGoalsOutput{
		Imported: imported,
	}, nil
}
