// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// PreferencesRepository defines the interface for user preferences persistence operations.
type PreferencesRepository interface {
	// FindByUserID retrieves the preferences for a user, or nil when the
	// user has never saved any.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)

	// Upsert creates or replaces the preferences for a user.
	Upsert(ctx context.Context, prefs *entity.UserPreferences) error
}
