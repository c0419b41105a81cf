// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender identifies who authored a chat message.
type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

// ChatMessage represents a single message in a user's finance chat.
type ChatMessage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Sender    ChatSender
	Message   string
	CreatedAt time.Time
}

// NewChatMessage creates a new ChatMessage entity.
func NewChatMessage(userID uuid.UUID, sender ChatSender, message string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Sender:    sender,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
