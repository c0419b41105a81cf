package projection

import (
	"testing"
	"time"
)

var today = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestCalculateProjection(t *testing.T) {
	t.Run("computes months needed and expected date", func(t *testing.T) {
		p := CalculateProjection(1200, 200, 250, today)

		if p.Remaining != 1000 {
			t.Errorf("expected remaining 1000, got %v", p.Remaining)
		}
		if p.MonthsNeeded != 4 {
			t.Errorf("expected 4 months needed, got %d", p.MonthsNeeded)
		}
		if p.Years != 0 || p.Months != 4 {
			t.Errorf("expected 0y 4m, got %dy %dm", p.Years, p.Months)
		}
		want := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
		if p.ExpectedDate == nil || !p.ExpectedDate.Equal(want) {
			t.Errorf("expected date %v, got %v", want, p.ExpectedDate)
		}
		if p.IsComplete {
			t.Error("expected IsComplete=false")
		}
	})

	t.Run("rounds partial months up", func(t *testing.T) {
		p := CalculateProjection(1000, 0, 300, today)
		if p.MonthsNeeded != 4 {
			t.Errorf("expected ceil(1000/300)=4 months, got %d", p.MonthsNeeded)
		}
	})

	t.Run("splits years and months", func(t *testing.T) {
		p := CalculateProjection(15000, 0, 500, today)
		if p.MonthsNeeded != 30 {
			t.Fatalf("expected 30 months, got %d", p.MonthsNeeded)
		}
		if p.Years != 2 || p.Months != 6 {
			t.Errorf("expected 2y 6m, got %dy %dm", p.Years, p.Months)
		}
	})

	t.Run("complete goal returns zeroed result", func(t *testing.T) {
		p := CalculateProjection(1000, 1000, 100, today)

		if !p.IsComplete {
			t.Error("expected IsComplete=true")
		}
		if p.Remaining != 0 {
			t.Errorf("expected remaining 0, got %v", p.Remaining)
		}
		if p.MonthsNeeded != 0 {
			t.Errorf("expected 0 months needed, got %d", p.MonthsNeeded)
		}
		if p.ExpectedDate != nil {
			t.Error("expected nil expected date")
		}
	})

	t.Run("overfunded goal is complete", func(t *testing.T) {
		p := CalculateProjection(1000, 1500, 100, today)
		if !p.IsComplete {
			t.Error("expected IsComplete=true")
		}
		if p.Remaining != 0 {
			t.Errorf("expected remaining clamped to 0, got %v", p.Remaining)
		}
	})

	t.Run("zero plan returns zeroed incomplete result", func(t *testing.T) {
		p := CalculateProjection(1000, 0, 0, today)

		if p.IsComplete {
			t.Error("expected IsComplete=false")
		}
		if p.MonthsNeeded != 0 {
			t.Errorf("expected 0 months needed, got %d", p.MonthsNeeded)
		}
		if p.ExpectedDate != nil {
			t.Error("expected nil expected date")
		}
		if p.Remaining != 1000 {
			t.Errorf("expected remaining 1000, got %v", p.Remaining)
		}
	})
}

func TestCalculateExtraContributionImpact(t *testing.T) {
	t.Run("extra contribution saves months", func(t *testing.T) {
		current := CalculateProjection(1200, 200, 250, today)

		impact := CalculateExtraContributionImpact(current, 500, 250, today)
		if impact == nil {
			t.Fatal("expected an impact result")
		}
		if impact.NewMonthsNeeded != 2 {
			t.Errorf("expected 2 months needed, got %d", impact.NewMonthsNeeded)
		}
		if impact.MonthsSaved != 2 {
			t.Errorf("expected 2 months saved, got %d", impact.MonthsSaved)
		}
		if !impact.Improvement {
			t.Error("expected improvement")
		}
	})

	t.Run("nil projection yields nil impact", func(t *testing.T) {
		if CalculateExtraContributionImpact(nil, 100, 250, today) != nil {
			t.Error("expected nil impact")
		}
	})

	t.Run("no plan yields nil impact", func(t *testing.T) {
		current := CalculateProjection(1200, 200, 250, today)
		if CalculateExtraContributionImpact(current, 100, 0, today) != nil {
			t.Error("expected nil impact")
		}
	})
}
