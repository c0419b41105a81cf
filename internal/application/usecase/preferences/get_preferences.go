// Package preferences contains the user preferences use cases.
package preferences

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// GetPreferencesInput represents the input for preferences retrieval.
type GetPreferencesInput struct {
	UserID uuid.UUID
}

// GetPreferencesOutput represents the output of preferences retrieval.
type GetPreferencesOutput struct {
	Preferences *entity.UserPreferences
}

// GetPreferencesUseCase handles preferences retrieval.
type GetPreferencesUseCase struct {
	prefsRepo adapter.PreferencesRepository
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(prefsRepo adapter.PreferencesRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		prefsRepo: prefsRepo,
	}
}

// Execute returns the user's preferences, falling back to defaults when none
// are saved.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, input GetPreferencesInput) (*GetPreferencesOutput, error) {
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = entity.DefaultUserPreferences(input.UserID)
	}

	return &GetPreferencesOutput{
		Preferences: prefs,
	}, nil
}
