package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/dashboard"
)

// DashboardUpcomingResponse represents an upcoming occurrence on the dashboard.
type DashboardUpcomingResponse struct {
	TransactionID string          `json:"transaction_id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category,omitempty"`
	Virtual       bool            `json:"virtual"`
}

// DashboardGoalResponse represents a goal roll-up line on the dashboard.
type DashboardGoalResponse struct {
	GoalID        string  `json:"goal_id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Status        string  `json:"status"`
	MonthsNeeded  int     `json:"months_needed"`
	IsComplete    bool    `json:"is_complete"`
}

// DashboardSummaryResponse represents the dashboard summary in API responses.
type DashboardSummaryResponse struct {
	GeneratedAt   time.Time                   `json:"generated_at"`
	MonthIncome   decimal.Decimal             `json:"month_income"`
	MonthExpenses decimal.Decimal             `json:"month_expenses"`
	Upcoming      []DashboardUpcomingResponse `json:"upcoming"`
	Goals         []DashboardGoalResponse     `json:"goals"`
	TotalSaved    float64                     `json:"total_saved"`
	TotalTarget   float64                     `json:"total_target"`
	Cached        bool                        `json:"cached"`
}

// ToDashboardSummaryResponse converts a dashboard Summary to its DTO form.
func ToDashboardSummaryResponse(s *dashboard.Summary, cached bool) DashboardSummaryResponse {
	response := DashboardSummaryResponse{
		GeneratedAt:   s.GeneratedAt,
		MonthIncome:   s.MonthIncome,
		MonthExpenses: s.MonthExpenses,
		Upcoming:      make([]DashboardUpcomingResponse, len(s.Upcoming)),
		Goals:         make([]DashboardGoalResponse, len(s.Goals)),
		TotalSaved:    s.TotalSaved,
		TotalTarget:   s.TotalTarget,
		Cached:        cached,
	}

	for i, u := range s.Upcoming {
		response.Upcoming[i] = DashboardUpcomingResponse{
			TransactionID: u.TransactionID.String(),
			Date:          u.Date.Format(time.DateOnly),
			Description:   u.Description,
			Amount:        u.Amount,
			Type:          u.Type,
			Category:      u.Category,
			Virtual:       u.Virtual,
		}
	}

	for i, g := range s.Goals {
		response.Goals[i] = DashboardGoalResponse{
			GoalID:        g.GoalID.String(),
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Status:        g.Status,
			MonthsNeeded:  g.MonthsNeeded,
			IsComplete:    g.IsComplete,
		}
	}

	return response
}
