// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user, newest first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateProjectionCheckpoint persists only the checkpoint pair for a goal.
func (r *goalRepository) UpdateProjectionCheckpoint(ctx context.Context, id uuid.UUID, checkpoint entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"projection_start_date":   checkpoint.ProjectionStartDate,
			"projection_start_amount": checkpoint.ProjectionStartAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal from the database (soft delete).
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
