// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// UserPreferencesModel represents the user_preferences table in the database.
type UserPreferencesModel struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CurrencyCode     string         `gorm:"type:varchar(3);not null;default:'USD'"`
	Locale           string         `gorm:"type:varchar(10);not null;default:'en-US'"`
	NotifyByEmail    bool           `gorm:"not null;default:true"`
	CustomCategories pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName returns the table name for the UserPreferencesModel.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}

// ToEntity converts a UserPreferencesModel to a domain UserPreferences entity.
func (m *UserPreferencesModel) ToEntity() *entity.UserPreferences {
	categories := make([]string, len(m.CustomCategories))
	copy(categories, m.CustomCategories)

	return &entity.UserPreferences{
		UserID:           m.UserID,
		CurrencyCode:     m.CurrencyCode,
		Locale:           m.Locale,
		NotifyByEmail:    m.NotifyByEmail,
		CustomCategories: categories,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// UserPreferencesFromEntity creates a UserPreferencesModel from a domain UserPreferences entity.
func UserPreferencesFromEntity(prefs *entity.UserPreferences) *UserPreferencesModel {
	return &UserPreferencesModel{
		UserID:           prefs.UserID,
		CurrencyCode:     prefs.CurrencyCode,
		Locale:           prefs.Locale,
		NotifyByEmail:    prefs.NotifyByEmail,
		CustomCategories: pq.StringArray(prefs.CustomCategories),
		CreatedAt:        prefs.CreatedAt,
		UpdatedAt:        prefs.UpdatedAt,
	}
}
