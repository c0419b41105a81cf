package goal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

func TestNormalizeRawGoal(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("decodes heterogeneous timestamp shapes", func(t *testing.T) {
		payload := []byte(`{
			"id": "7b9e54f3-3c15-4f92-a9e1-0f6c1d2b8a77",
			"name": "Trip to Japan",
			"targetAmount": 5000,
			"currentAmount": 1200,
			"monthlyContribution": 400,
			"createdAt": {"seconds": 1704067200, "nanoseconds": 0},
			"projectionStartDate": "2024-03-15",
			"contributions": [
				{"date": 1710460800000, "amount": 700, "note": "tax refund"},
				{"date": "2024-04-01T10:30:00Z", "amount": 500}
			],
			"projectionStartAmount": 700
		}`)

		var raw entity.RawGoal
		if err := json.Unmarshal(payload, &raw); err != nil {
			t.Fatalf("failed to decode raw goal: %v", err)
		}

		g := NormalizeRawGoal(&raw, userID, now)

		if g.ID.String() != "7b9e54f3-3c15-4f92-a9e1-0f6c1d2b8a77" {
			t.Errorf("expected preserved ID, got %v", g.ID)
		}
		if g.UserID != userID {
			t.Errorf("expected userID %v, got %v", userID, g.UserID)
		}
		wantCreated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if !g.CreatedAt.Equal(wantCreated) {
			t.Errorf("expected createdAt %v, got %v", wantCreated, g.CreatedAt)
		}
		wantCheckpoint := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if g.ProjectionStartDate == nil || !g.ProjectionStartDate.Equal(wantCheckpoint) {
			t.Errorf("expected checkpoint %v, got %v", wantCheckpoint, g.ProjectionStartDate)
		}
		if g.ProjectionStartAmount != 700 {
			t.Errorf("expected checkpoint amount 700, got %v", g.ProjectionStartAmount)
		}
		if len(g.Contributions) != 2 {
			t.Fatalf("expected 2 contributions, got %d", len(g.Contributions))
		}
		wantFirst := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !g.Contributions[0].Date.Equal(wantFirst) {
			t.Errorf("expected first contribution date %v, got %v", wantFirst, g.Contributions[0].Date)
		}
		if g.Contributions[0].Note != "tax refund" {
			t.Errorf("expected note preserved, got %q", g.Contributions[0].Note)
		}
	})

	t.Run("falls back to the legacy checkpoint field name", func(t *testing.T) {
		raw := entity.RawGoal{Name: "Old goal", TargetAmount: 100, CurrentAmount: 50}
		if err := json.Unmarshal([]byte(`"2024-02-01"`), &raw.LocalProjectionStartAt); err != nil {
			t.Fatalf("failed to decode flex time: %v", err)
		}

		g := NormalizeRawGoal(&raw, userID, now)

		want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		if g.ProjectionStartDate == nil || !g.ProjectionStartDate.Equal(want) {
			t.Errorf("expected checkpoint %v, got %v", want, g.ProjectionStartDate)
		}
	})

	t.Run("invalid ID gets a fresh one", func(t *testing.T) {
		raw := entity.RawGoal{ID: "legacy-doc-42", Name: "Bike"}
		g := NormalizeRawGoal(&raw, userID, now)
		if g.ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
	})

	t.Run("missing createdAt falls back to now", func(t *testing.T) {
		raw := entity.RawGoal{Name: "Bike", TargetAmount: 800}
		g := NormalizeRawGoal(&raw, userID, now)
		if !g.CreatedAt.Equal(now) {
			t.Errorf("expected createdAt %v, got %v", now, g.CreatedAt)
		}
	})
}

func TestNormalizeRawGoals(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	raws := []entity.RawGoal{
		{ID: "not-a-uuid", Name: "First", TargetAmount: 1000},
		{ID: "a3c9f1de-2b40-4b7c-9f16-5d8e2a7c4b01", Name: "Second", TargetAmount: 2000, CurrentAmount: 500},
	}

	goals := NormalizeRawGoals(raws, userID, now)

	if len(goals) != len(raws) {
		t.Fatalf("expected %d goals, got %d", len(raws), len(goals))
	}
	for i, g := range goals {
		if g.Name != raws[i].Name {
			t.Errorf("goal %d: expected name %q, got %q", i, raws[i].Name, g.Name)
		}
		if g.UserID != userID {
			t.Errorf("goal %d: expected owner %v, got %v", i, userID, g.UserID)
		}
	}

	t.Run("second record gets its checkpoint backfilled", func(t *testing.T) {
		if goals[1].ProjectionStartDate == nil {
			t.Error("expected a backfilled checkpoint for a goal with progress")
		}
	})

	t.Run("input records are not mutated", func(t *testing.T) {
		if raws[0].ID != "not-a-uuid" || raws[1].Name != "Second" {
			t.Error("expected raw records to be left untouched")
		}
	})
}

func TestEnsureCheckpoint(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("backfills missing checkpoint at createdAt with zero amount", func(t *testing.T) {
		created := now.AddDate(0, -4, 0)
		g := &entity.Goal{CurrentAmount: 300, CreatedAt: created}

		if !EnsureCheckpoint(g, now) {
			t.Fatal("expected a backfill")
		}
		if g.ProjectionStartDate == nil || !g.ProjectionStartDate.Equal(created) {
			t.Errorf("expected checkpoint %v, got %v", created, g.ProjectionStartDate)
		}
		if g.ProjectionStartAmount != 0 {
			t.Errorf("expected checkpoint amount 0, got %v", g.ProjectionStartAmount)
		}
	})

	t.Run("falls back to now when createdAt is unknown", func(t *testing.T) {
		g := &entity.Goal{CurrentAmount: 300}
		if !EnsureCheckpoint(g, now) {
			t.Fatal("expected a backfill")
		}
		if g.ProjectionStartDate == nil || !g.ProjectionStartDate.Equal(now) {
			t.Errorf("expected checkpoint %v, got %v", now, g.ProjectionStartDate)
		}
	})

	t.Run("existing checkpoint is left alone", func(t *testing.T) {
		anchor := now.AddDate(0, -1, 0)
		g := &entity.Goal{CurrentAmount: 300, ProjectionStartDate: &anchor, ProjectionStartAmount: 100}
		if EnsureCheckpoint(g, now) {
			t.Error("expected no backfill")
		}
		if g.ProjectionStartAmount != 100 {
			t.Errorf("checkpoint amount changed to %v", g.ProjectionStartAmount)
		}
	})

	t.Run("goal without progress is left alone", func(t *testing.T) {
		g := &entity.Goal{CurrentAmount: 0}
		if EnsureCheckpoint(g, now) {
			t.Error("expected no backfill")
		}
		if g.ProjectionStartDate != nil {
			t.Errorf("unexpected checkpoint %v", g.ProjectionStartDate)
		}
	})
}
