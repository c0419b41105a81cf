package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	"github.com/lopesbrenda/FinApp/internal/integration/persistence/model"
)

// preferencesRepository implements the adapter.PreferencesRepository interface.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new preferences repository instance.
func NewPreferencesRepository(db *gorm.DB) adapter.PreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

// FindByUserID retrieves the preferences for a user, or nil when none exist.
func (r *preferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefsModel model.UserPreferencesModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return prefsModel.ToEntity(), nil
}

// Upsert creates or replaces the preferences for a user.
func (r *preferencesRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsModel := model.UserPreferencesFromEntity(prefs)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(prefsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
