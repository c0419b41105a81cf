// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrencyCode is used when a user has no saved preferences.
const DefaultCurrencyCode = "USD"

// UserPreferences holds per-user display and categorization settings.
type UserPreferences struct {
	UserID           uuid.UUID
	CurrencyCode     string // ISO 4217 code, e.g. "USD", "BRL"
	Locale           string // e.g. "en-US", "pt-BR"
	NotifyByEmail    bool
	CustomCategories []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultUserPreferences returns the preferences applied before a user has
// saved any.
func DefaultUserPreferences(userID uuid.UUID) *UserPreferences {
	now := time.Now().UTC()
	return &UserPreferences{
		UserID:           userID,
		CurrencyCode:     DefaultCurrencyCode,
		Locale:           "en-US",
		NotifyByEmail:    true,
		CustomCategories: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
