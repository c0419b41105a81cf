package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	"github.com/lopesbrenda/FinApp/internal/integration/persistence/model"
)

// chatRepository implements the adapter.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance.
func NewChatRepository(db *gorm.DB) adapter.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create stores a new chat message.
func (r *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	messageModel := model.ChatMessageFromEntity(message)
	result := r.db.WithContext(ctx).Create(messageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all messages for a user, oldest first.
func (r *chatRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []model.ChatMessageModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messageModels)
	if result.Error != nil {
		return nil, result.Error
	}

	messages := make([]*entity.ChatMessage, len(messageModels))
	for i, mm := range messageModels {
		messages[i] = mm.ToEntity()
	}
	return messages, nil
}
