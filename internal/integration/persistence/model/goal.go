// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// ContributionList stores a goal's contribution history as a JSONB column.
type ContributionList []entity.Contribution

// Value implements driver.Valuer.
func (c ContributionList) Value() (driver.Value, error) {
	if c == nil {
		c = ContributionList{}
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *ContributionList) Scan(value interface{}) error {
	if value == nil {
		*c = ContributionList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported contribution list type %T", value)
	}

	return json.Unmarshal(data, c)
}

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name                  string           `gorm:"type:varchar(255);not null"`
	TargetAmount          float64          `gorm:"type:decimal(15,2);not null"`
	CurrentAmount         float64          `gorm:"type:decimal(15,2);not null;default:0"`
	MonthlyContribution   float64          `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate               *time.Time       `gorm:"type:date"`
	ProjectionStartDate   *time.Time       `gorm:"type:timestamptz"`
	ProjectionStartAmount float64          `gorm:"type:decimal(15,2);not null;default:0"`
	Contributions         ContributionList `gorm:"type:jsonb;not null;default:'[]'"`
	Archived              bool             `gorm:"not null;default:false;index"`
	ArchivedAt            *time.Time       `gorm:"type:timestamptz"`
	CompletedAt           *time.Time       `gorm:"type:timestamptz"`
	CreatedAt             time.Time        `gorm:"not null"`
	UpdatedAt             time.Time        `gorm:"not null"`
	DeletedAt             gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	contributions := make([]entity.Contribution, len(m.Contributions))
	copy(contributions, m.Contributions)

	return &entity.Goal{
		ID:                    m.ID,
		UserID:                m.UserID,
		Name:                  m.Name,
		TargetAmount:          m.TargetAmount,
		CurrentAmount:         m.CurrentAmount,
		MonthlyContribution:   m.MonthlyContribution,
		DueDate:               m.DueDate,
		ProjectionStartDate:   m.ProjectionStartDate,
		ProjectionStartAmount: m.ProjectionStartAmount,
		Contributions:         contributions,
		Archived:              m.Archived,
		ArchivedAt:            m.ArchivedAt,
		CompletedAt:           m.CompletedAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	contributions := make(ContributionList, len(goal.Contributions))
	copy(contributions, goal.Contributions)

	return &GoalModel{
		ID:                    goal.ID,
		UserID:                goal.UserID,
		Name:                  goal.Name,
		TargetAmount:          goal.TargetAmount,
		CurrentAmount:         goal.CurrentAmount,
		MonthlyContribution:   goal.MonthlyContribution,
		DueDate:               goal.DueDate,
		ProjectionStartDate:   goal.ProjectionStartDate,
		ProjectionStartAmount: goal.ProjectionStartAmount,
		Contributions:         contributions,
		Archived:              goal.Archived,
		ArchivedAt:            goal.ArchivedAt,
		CompletedAt:           goal.CompletedAt,
		CreatedAt:             goal.CreatedAt,
		UpdatedAt:             goal.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}
