package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// NormalizeRawGoal converts a legacy export record into a canonical Goal. All
// timestamp fields arrive through FlexTime so the heterogeneous shapes of the
// export (ISO strings, epoch milliseconds, seconds wrappers) collapse into
// time.Time here. Missing checkpoints are back-filled via EnsureCheckpoint.
func NormalizeRawGoal(raw *entity.RawGoal, userID uuid.UUID, now time.Time) *entity.Goal {
	id, err := uuid.Parse(raw.ID)
	if err != nil {
		id = uuid.New()
	}

	createdAt := now
	if t := raw.CreatedAt.Time(); t != nil {
		createdAt = *t
	}

	g := &entity.Goal{
		ID:                  id,
		UserID:              userID,
		Name:                raw.Name,
		TargetAmount:        raw.TargetAmount,
		CurrentAmount:       raw.CurrentAmount,
		MonthlyContribution: raw.MonthlyContribution,
		DueDate:             raw.DueDate.Time(),
		CompletedAt:         raw.CompletedAt.Time(),
		ArchivedAt:          raw.ArchivedAt.Time(),
		Archived:            raw.Archived,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}

	// The legacy app wrote the checkpoint date under two names in different
	// versions; prefer the canonical one.
	if t := raw.ProjectionStartDate.Time(); t != nil {
		g.ProjectionStartDate = t
	} else if t := raw.LocalProjectionStartAt.Time(); t != nil {
		g.ProjectionStartDate = t
	}
	if raw.ProjectionStartAmount != nil {
		g.ProjectionStartAmount = *raw.ProjectionStartAmount
	}

	g.Contributions = make([]entity.Contribution, 0, len(raw.Contributions))
	for _, rc := range raw.Contributions {
		c := entity.Contribution{Amount: rc.Amount, Note: rc.Note}
		if t := rc.Date.Time(); t != nil {
			c.Date = *t
		}
		g.Contributions = append(g.Contributions, c)
	}

	EnsureCheckpoint(g, now)
	return g
}

// NormalizeRawGoals converts a batch of legacy export records, preserving
// input order. The input slice is never mutated.
func NormalizeRawGoals(raws []entity.RawGoal, userID uuid.UUID, now time.Time) []*entity.Goal {
	goals := make([]*entity.Goal, len(raws))
	for i := range raws {
		goals[i] = NormalizeRawGoal(&raws[i], userID, now)
	}
	return goals
}

// EnsureCheckpoint back-fills a missing projection checkpoint on a goal that
// already has saved progress: the checkpoint is anchored at the goal's
// creation date (or now, when unknown) with a start amount of zero, so the
// whole balance counts as progress since then. Reports whether the goal was
// modified.
func EnsureCheckpoint(g *entity.Goal, now time.Time) bool {
	if g.ProjectionStartDate != nil || g.CurrentAmount <= 0 {
		return false
	}

	anchor := g.CreatedAt
	if anchor.IsZero() {
		anchor = now
	}
	g.ProjectionStartDate = &anchor
	g.ProjectionStartAmount = 0
	return true
}
