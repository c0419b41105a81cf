package dto

import (
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// UpdatePreferencesRequest represents the request body for preferences update.
// Absent fields keep their current value.
type UpdatePreferencesRequest struct {
	CurrencyCode     *string   `json:"currency_code,omitempty" binding:"omitempty,len=3"`
	Locale           *string   `json:"locale,omitempty"`
	NotifyByEmail    *bool     `json:"notify_by_email,omitempty"`
	CustomCategories *[]string `json:"custom_categories,omitempty"`
}

// PreferencesResponse represents user preferences in API responses.
type PreferencesResponse struct {
	CurrencyCode     string   `json:"currency_code"`
	Locale           string   `json:"locale"`
	NotifyByEmail    bool     `json:"notify_by_email"`
	CustomCategories []string `json:"custom_categories"`
}

// ToPreferencesResponse converts domain UserPreferences to its DTO form.
func ToPreferencesResponse(p *entity.UserPreferences) PreferencesResponse {
	categories := p.CustomCategories
	if categories == nil {
		categories = []string{}
	}
	return PreferencesResponse{
		CurrencyCode:     p.CurrencyCode,
		Locale:           p.Locale,
		NotifyByEmail:    p.NotifyByEmail,
		CustomCategories: categories,
	}
}
