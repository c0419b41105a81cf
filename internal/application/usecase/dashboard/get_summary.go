// Package dashboard contains the dashboard summary use case.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/goal"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/projection"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/recurrence"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

const (
	// upcomingWindowDays is how far ahead the dashboard looks for occurrences.
	upcomingWindowDays = 30
	// maxUpcoming caps the upcoming occurrence list.
	maxUpcoming = 10
)

// UpcomingOccurrence is a dashboard line item for an occurrence inside the
// upcoming window.
type UpcomingOccurrence struct {
	TransactionID uuid.UUID       `json:"transactionId"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category,omitempty"`
	Virtual       bool            `json:"virtual"`
}

// GoalSummary is the dashboard roll-up line for a single goal.
type GoalSummary struct {
	GoalID        uuid.UUID `json:"goalId"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Status        string    `json:"status"`
	MonthsNeeded  int       `json:"monthsNeeded"`
	IsComplete    bool      `json:"isComplete"`
}

// Summary is the cached dashboard payload.
type Summary struct {
	GeneratedAt   time.Time            `json:"generatedAt"`
	MonthIncome   decimal.Decimal      `json:"monthIncome"`
	MonthExpenses decimal.Decimal      `json:"monthExpenses"`
	Upcoming      []UpcomingOccurrence `json:"upcoming"`
	Goals         []GoalSummary        `json:"goals"`
	TotalSaved    float64              `json:"totalSaved"`
	TotalTarget   float64              `json:"totalTarget"`
}

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of the dashboard summary.
type GetSummaryOutput struct {
	Summary *Summary
	Cached  bool
}

// GetSummaryUseCase assembles the dashboard summary: month totals, upcoming
// occurrences from the recurrence expansion, and a goal roll-up. Results are
// cached per user with a short TTL; cache failures degrade to a fresh build.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	cache           adapter.SummaryCache
	expander        *recurrence.Expander
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	cache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		cache:           cache,
		expander:        recurrence.NewExpander(),
	}
}

// Execute returns the dashboard summary for a user.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if cached := uc.fromCache(ctx, input.UserID); cached != nil {
		return &GetSummaryOutput{Summary: cached, Cached: true}, nil
	}

	now := time.Now().UTC()
	today := valueobject.CalendarDate(now)

	summary, err := uc.build(ctx, input.UserID, now, today)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, input.UserID, summary)

	return &GetSummaryOutput{Summary: summary}, nil
}

func (uc *GetSummaryUseCase) build(ctx context.Context, userID uuid.UUID, now, today time.Time) (*Summary, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	summary := &Summary{
		GeneratedAt:   now,
		MonthIncome:   decimal.Zero,
		MonthExpenses: decimal.Zero,
		Upcoming:      []UpcomingOccurrence{},
		Goals:         []GoalSummary{},
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	upcomingEnd := today.AddDate(0, 0, upcomingWindowDays)

	// One expansion covers both the month totals and the upcoming window.
	window := &recurrence.Window{Start: monthStart, End: maxTime(monthEnd, upcomingEnd)}
	occurrences := uc.expander.Expand(transactions, window, today)

	for _, occ := range occurrences {
		if !occ.Date.Before(monthStart) && !occ.Date.After(monthEnd) {
			switch occ.Type {
			case entity.TransactionTypeIncome:
				summary.MonthIncome = summary.MonthIncome.Add(occ.Amount)
			case entity.TransactionTypeExpense:
				summary.MonthExpenses = summary.MonthExpenses.Add(occ.Amount)
			}
		}
	}

	// Expansion is newest-first; walk backwards so upcoming reads soonest-first.
	for i := len(occurrences) - 1; i >= 0 && len(summary.Upcoming) < maxUpcoming; i-- {
		occ := occurrences[i]
		if occ.Date.Before(today) || occ.Date.After(upcomingEnd) {
			continue
		}
		summary.Upcoming = append(summary.Upcoming, UpcomingOccurrence{
			TransactionID: occ.ID,
			Date:          occ.Date,
			Description:   occ.Description,
			Amount:        occ.Amount,
			Type:          string(occ.Type),
			Category:      occ.Category,
			Virtual:       occ.VirtualOccurrence,
		})
	}

	for _, g := range goals {
		if g.Archived {
			continue
		}
		goal.EnsureCheckpoint(g, now)
		proj := projection.CalculateProjection(g.TargetAmount, g.CurrentAmount, g.MonthlyContribution, now)
		status := projection.CalculateStatus(g, now)

		summary.Goals = append(summary.Goals, GoalSummary{
			GoalID:        g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Status:        string(status.Kind),
			MonthsNeeded:  proj.MonthsNeeded,
			IsComplete:    proj.IsComplete,
		})
		summary.TotalSaved += g.CurrentAmount
		summary.TotalTarget += g.TargetAmount
	}

	return summary, nil
}

func (uc *GetSummaryUseCase) fromCache(ctx context.Context, userID uuid.UUID) *Summary {
	if uc.cache == nil {
		return nil
	}
	payload, err := uc.cache.Get(ctx, userID)
	if err != nil {
		slog.Warn("Dashboard summary cache read failed", "userID", userID, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("Dashboard summary cache payload corrupt", "userID", userID, "error", err)
		return nil
	}
	return &summary
}

func (uc *GetSummaryUseCase) toCache(ctx context.Context, userID uuid.UUID, summary *Summary) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("Failed to encode dashboard summary for cache", "userID", userID, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, userID, payload); err != nil {
		slog.Warn("Dashboard summary cache write failed", "userID", userID, "error", err)
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
