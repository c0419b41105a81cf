// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// ChatRepository defines the interface for chat message persistence operations.
type ChatRepository interface {
	// Create stores a new chat message.
	Create(ctx context.Context, message *entity.ChatMessage) error

	// FindByUser retrieves all messages for a user, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatMessage, error)
}
