package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
)

// BackfillCheckpointsInput represents the input for the checkpoint backfill.
type BackfillCheckpointsInput struct {
	UserID uuid.UUID
}

// BackfillCheckpointsOutput represents the output of the checkpoint backfill.
type BackfillCheckpointsOutput struct {
	Scanned    int
	Backfilled int
}

// BackfillCheckpointsUseCase repairs legacy goals that carry progress but no
// projection checkpoint, so schedule status stops treating them as unplanned.
type BackfillCheckpointsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewBackfillCheckpointsUseCase creates a new BackfillCheckpointsUseCase instance.
func NewBackfillCheckpointsUseCase(goalRepo adapter.GoalRepository) *BackfillCheckpointsUseCase {
	return &BackfillCheckpointsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute scans the user's goals and persists a back-filled checkpoint for
// each one missing it. Per-goal persistence failures are logged and skipped;
// the next read repairs them again.
func (uc *BackfillCheckpointsUseCase) Execute(ctx context.Context, input BackfillCheckpointsInput) (*BackfillCheckpointsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	output := &BackfillCheckpointsOutput{Scanned: len(goals)}

	for _, g := range goals {
		if !EnsureCheckpoint(g, now) {
			continue
		}
		if err := uc.goalRepo.UpdateProjectionCheckpoint(ctx, g.ID, *g); err != nil {
			slog.Warn("Failed to persist back-filled projection checkpoint",
				"goalID", g.ID,
				"error", err,
			)
			continue
		}
		output.Backfilled++
	}

	return output, nil
}
