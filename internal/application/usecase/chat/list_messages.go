package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// ListMessagesInput represents the input for chat history listing.
type ListMessagesInput struct {
	UserID uuid.UUID
}

// ListMessagesOutput represents the output of chat history listing.
type ListMessagesOutput struct {
	Messages []*entity.ChatMessage
}

// ListMessagesUseCase handles chat history listing.
type ListMessagesUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewListMessagesUseCase creates a new ListMessagesUseCase instance.
func NewListMessagesUseCase(chatRepo adapter.ChatRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		chatRepo: chatRepo,
	}
}

// Execute returns the user's chat history, oldest first.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) (*ListMessagesOutput, error) {
	messages, err := uc.chatRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	return &ListMessagesOutput{
		Messages: messages,
	}, nil
}
