// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

// Contribution is a single entry in a goal's append-only contribution history.
// Amount may be negative (withdrawal).
type Contribution struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Note   string    `json:"note,omitempty"`
}

// Goal represents a savings goal in FinApp.
//
// CurrentAmount always reflects the sum of all contribution amounts and may
// exceed TargetAmount. The checkpoint pair (ProjectionStartDate,
// ProjectionStartAmount) anchors the expected linear savings trajectory; it is
// re-anchored after any event that changes the trajectory (plan change, any
// contribution, restart).
type Goal struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Name                  string
	TargetAmount          float64
	CurrentAmount         float64
	MonthlyContribution   float64    // 0 means no active savings plan
	DueDate               *time.Time // Informational target, independent of projection
	ProjectionStartDate   *time.Time
	ProjectionStartAmount float64
	Contributions         []Contribution
	Archived              bool
	ArchivedAt            *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity with the checkpoint anchored at creation.
func NewGoal(userID uuid.UUID, name string, targetAmount, monthlyContribution float64, dueDate *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:                    uuid.New(),
		UserID:                userID,
		Name:                  name,
		TargetAmount:          targetAmount,
		CurrentAmount:         0,
		MonthlyContribution:   monthlyContribution,
		DueDate:               dueDate,
		ProjectionStartDate:   &now,
		ProjectionStartAmount: 0,
		Contributions:         []Contribution{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// IsComplete reports whether the goal has reached its target.
func (g *Goal) IsComplete() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

// Clone returns a deep copy of the goal. State transitions operate on clones
// so callers never observe a half-applied mutation.
func (g *Goal) Clone() *Goal {
	clone := *g
	clone.Contributions = make([]Contribution, len(g.Contributions))
	copy(clone.Contributions, g.Contributions)
	if g.DueDate != nil {
		d := *g.DueDate
		clone.DueDate = &d
	}
	if g.ProjectionStartDate != nil {
		d := *g.ProjectionStartDate
		clone.ProjectionStartDate = &d
	}
	if g.ArchivedAt != nil {
		d := *g.ArchivedAt
		clone.ArchivedAt = &d
	}
	if g.CompletedAt != nil {
		d := *g.CompletedAt
		clone.CompletedAt = &d
	}
	if g.DeletedAt != nil {
		d := *g.DeletedAt
		clone.DeletedAt = &d
	}
	return &clone
}

// GoalEventType identifies a domain event emitted by a goal state transition.
type GoalEventType string

const (
	// GoalEventCompleted is emitted when a contribution takes the goal from
	// below its target to at or above it.
	GoalEventCompleted GoalEventType = "goal_completed"

	// GoalEventReopened is emitted when a withdrawal takes a completed goal
	// back below its target.
	GoalEventReopened GoalEventType = "goal_reopened"
)

// GoalEvent is a domain event produced by a goal state transition. The caller
// decides persistence and side effects (notifications, modals).
type GoalEvent struct {
	Type       GoalEventType
	GoalID     uuid.UUID
	UserID     uuid.UUID
	OccurredAt time.Time
}

// RawGoal is a goal record as read from the legacy document export, before
// normalization. Timestamp fields arrive in heterogeneous shapes (ISO string,
// epoch milliseconds, {seconds,nanoseconds} wrapper) and are decoded through
// valueobject.FlexTime.
type RawGoal struct {
	ID                     string              `json:"id"`
	Name                   string              `json:"name"`
	TargetAmount           float64             `json:"targetAmount"`
	CurrentAmount          float64             `json:"currentAmount"`
	MonthlyContribution    float64             `json:"monthlyContribution"`
	DueDate                valueobject.FlexTime `json:"dueDate"`
	CreatedAt              valueobject.FlexTime `json:"createdAt"`
	CompletedAt            valueobject.FlexTime `json:"completedAt"`
	ArchivedAt             valueobject.FlexTime `json:"archivedAt"`
	ProjectionStartDate    valueobject.FlexTime `json:"projectionStartDate"`
	LocalProjectionStartAt valueobject.FlexTime `json:"localProjectionStartAt"`
	ProjectionStartAmount  *float64            `json:"projectionStartAmount"`
	Archived               bool                `json:"archived"`
	Contributions          []RawContribution   `json:"contributions"`
}

// RawContribution is a contribution entry from the legacy document export.
type RawContribution struct {
	Date   valueobject.FlexTime `json:"date"`
	Amount float64              `json:"amount"`
	Note   string               `json:"note"`
}
