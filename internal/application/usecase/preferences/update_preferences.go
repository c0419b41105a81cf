package preferences

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// UpdatePreferencesInput represents the input for preferences update.
type UpdatePreferencesInput struct {
	UserID           uuid.UUID
	CurrencyCode     *string   // Optional
	Locale           *string   // Optional
	NotifyByEmail    *bool     // Optional
	CustomCategories *[]string // Optional, replaces the whole list
}

// UpdatePreferencesOutput represents the output of preferences update.
type UpdatePreferencesOutput struct {
	Preferences *entity.UserPreferences
}

// UpdatePreferencesUseCase handles preferences update.
type UpdatePreferencesUseCase struct {
	prefsRepo adapter.PreferencesRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(prefsRepo adapter.PreferencesRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		prefsRepo: prefsRepo,
	}
}

// Execute applies the partial update on top of the saved preferences (or the
// defaults) and persists the result.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = entity.DefaultUserPreferences(input.UserID)
	}

	if input.CurrencyCode != nil {
		prefs.CurrencyCode = strings.ToUpper(strings.TrimSpace(*input.CurrencyCode))
	}
	if input.Locale != nil {
		prefs.Locale = *input.Locale
	}
	if input.NotifyByEmail != nil {
		prefs.NotifyByEmail = *input.NotifyByEmail
	}
	if input.CustomCategories != nil {
		categories := make([]string, 0, len(*input.CustomCategories))
		for _, c := range *input.CustomCategories {
			c = strings.TrimSpace(c)
			if c != "" {
				categories = append(categories, c)
			}
		}
		prefs.CustomCategories = categories
	}

	prefs.UpdatedAt = time.Now().UTC()

	if err := uc.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return &UpdatePreferencesOutput{
		Preferences: prefs,
	}, nil
}
