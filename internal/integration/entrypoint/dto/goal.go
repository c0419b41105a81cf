package dto

import (
	"time"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/goal"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/projection"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name                string  `json:"name" binding:"required"`
	TargetAmount        float64 `json:"target_amount" binding:"required,gt=0"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"omitempty,gte=0"`
	DueDate             *string `json:"due_date,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name                *string  `json:"name,omitempty"`
	TargetAmount        *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	MonthlyContribution *float64 `json:"monthly_contribution,omitempty" binding:"omitempty,gte=0"`
	DueDate             *string  `json:"due_date,omitempty"`
	ClearDueDate        bool     `json:"clear_due_date,omitempty"`
}

// AddContributionRequest represents the request body for recording a
// contribution. Negative amounts record withdrawals.
type AddContributionRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Date   *string `json:"date,omitempty"`
	Note   string  `json:"note,omitempty"`
}

// ImportGoalsRequest represents the request body for the legacy goal import.
type ImportGoalsRequest struct {
	Goals []entity.RawGoal `json:"goals" binding:"required"`
}

// ContributionResponse represents a single contribution entry.
type ContributionResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

// ProjectionResponse represents a goal's completion projection.
type ProjectionResponse struct {
	Remaining    float64 `json:"remaining"`
	MonthsNeeded int     `json:"months_needed"`
	Years        int     `json:"years"`
	Months       int     `json:"months"`
	ExpectedDate *string `json:"expected_date,omitempty"`
	IsComplete   bool    `json:"is_complete"`
}

// StatusResponse represents a goal's schedule-adherence classification.
type StatusResponse struct {
	Kind         string  `json:"kind"`
	Difference   float64 `json:"difference,omitempty"`
	MonthsSaved  int     `json:"months_saved,omitempty"`
	MonthsBehind int     `json:"months_behind,omitempty"`
}

// ExtraImpactResponse represents the what-if impact of a one-off extra
// contribution on a goal's completion projection.
type ExtraImpactResponse struct {
	MonthsSaved     int    `json:"months_saved"`
	NewMonthsNeeded int    `json:"new_months_needed"`
	NewExpectedDate string `json:"new_expected_date"`
	Improvement     bool   `json:"improvement"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID                    string                 `json:"id"`
	UserID                string                 `json:"user_id"`
	Name                  string                 `json:"name"`
	TargetAmount          float64                `json:"target_amount"`
	CurrentAmount         float64                `json:"current_amount"`
	MonthlyContribution   float64                `json:"monthly_contribution"`
	DueDate               *string                `json:"due_date,omitempty"`
	ProjectionStartDate   *time.Time             `json:"projection_start_date,omitempty"`
	ProjectionStartAmount float64                `json:"projection_start_amount"`
	Contributions         []ContributionResponse `json:"contributions"`
	Archived              bool                   `json:"archived"`
	ArchivedAt            *time.Time             `json:"archived_at,omitempty"`
	CompletedAt           *time.Time             `json:"completed_at,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
	Projection            *ProjectionResponse    `json:"projection,omitempty"`
	Status                *StatusResponse        `json:"status,omitempty"`
	ExtraImpact           *ExtraImpactResponse   `json:"extra_impact,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalEventResponse represents a domain event emitted by a goal transition.
type GoalEventResponse struct {
	Type       string    `json:"type"`
	GoalID     string    `json:"goal_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ContributionResultResponse represents the response for recording a
// contribution, including any lifecycle events it triggered.
type ContributionResultResponse struct {
	Goal   GoalResponse        `json:"goal"`
	Events []GoalEventResponse `json:"events"`
}

// ImportGoalsResponse represents the response for the legacy goal import.
type ImportGoalsResponse struct {
	Imported int            `json:"imported"`
	Goals    []GoalResponse `json:"goals"`
}

// BackfillCheckpointsResponse represents the response for the checkpoint
// backfill maintenance operation.
type BackfillCheckpointsResponse struct {
	Scanned    int `json:"scanned"`
	Backfilled int `json:"backfilled"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:                    g.ID.String(),
		UserID:                g.UserID.String(),
		Name:                  g.Name,
		TargetAmount:          g.TargetAmount,
		CurrentAmount:         g.CurrentAmount,
		MonthlyContribution:   g.MonthlyContribution,
		ProjectionStartDate:   g.ProjectionStartDate,
		ProjectionStartAmount: g.ProjectionStartAmount,
		Contributions:         make([]ContributionResponse, len(g.Contributions)),
		Archived:              g.Archived,
		ArchivedAt:            g.ArchivedAt,
		CompletedAt:           g.CompletedAt,
		CreatedAt:             g.CreatedAt,
		UpdatedAt:             g.UpdatedAt,
	}

	if g.DueDate != nil {
		dateStr := g.DueDate.Format(time.DateOnly)
		response.DueDate = &dateStr
	}

	for i, c := range g.Contributions {
		response.Contributions[i] = ContributionResponse{
			Date:   c.Date.Format(time.DateOnly),
			Amount: c.Amount,
			Note:   c.Note,
		}
	}

	return response
}

// ToProjectionResponse converts a Projection to a ProjectionResponse DTO.
func ToProjectionResponse(p *projection.Projection) *ProjectionResponse {
	if p == nil {
		return nil
	}

	response := &ProjectionResponse{
		Remaining:    p.Remaining,
		MonthsNeeded: p.MonthsNeeded,
		Years:        p.Years,
		Months:       p.Months,
		IsComplete:   p.IsComplete,
	}

	if p.ExpectedDate != nil {
		dateStr := p.ExpectedDate.Format(time.DateOnly)
		response.ExpectedDate = &dateStr
	}

	return response
}

// ToStatusResponse converts a Status to a StatusResponse DTO.
func ToStatusResponse(s *projection.Status) *StatusResponse {
	if s == nil {
		return nil
	}

	return &StatusResponse{
		Kind:         string(s.Kind),
		Difference:   s.Difference,
		MonthsSaved:  s.MonthsSaved,
		MonthsBehind: s.MonthsBehind,
	}
}

// ToExtraImpactResponse converts an ExtraContributionImpact to its DTO form.
func ToExtraImpactResponse(impact *projection.ExtraContributionImpact) *ExtraImpactResponse {
	if impact == nil {
		return nil
	}

	return &ExtraImpactResponse{
		MonthsSaved:     impact.MonthsSaved,
		NewMonthsNeeded: impact.NewMonthsNeeded,
		NewExpectedDate: impact.NewExpectedDate.Format(time.DateOnly),
		Improvement:     impact.Improvement,
	}
}

// ToGoalWithDerivedResponse converts a goal with its derived projection and
// status to a GoalResponse DTO.
func ToGoalWithDerivedResponse(out *goal.GoalOutput) GoalResponse {
	response := ToGoalResponse(out.Goal)
	response.Projection = ToProjectionResponse(out.Projection)
	response.Status = ToStatusResponse(out.Status)
	return response
}

// ToGoalListResponse converts a list of goals with derived data to a
// GoalListResponse.
func ToGoalListResponse(goals []*goal.GoalOutput) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalWithDerivedResponse(g)
	}
	return GoalListResponse{
		Goals: out,
	}
}

// ToGoalEventResponses converts domain goal events to their DTO form.
func ToGoalEventResponses(events []entity.GoalEvent) []GoalEventResponse {
	out := make([]GoalEventResponse, len(events))
	for i, e := range events {
		out[i] = GoalEventResponse{
			Type:       string(e.Type),
			GoalID:     e.GoalID.String(),
			OccurredAt: e.OccurredAt,
		}
	}
	return out
}
