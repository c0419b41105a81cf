// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// ChatMessageModel represents the chat_messages table in the database.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender    string    `gorm:"type:varchar(10);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ChatMessageModel.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

// ToEntity converts a ChatMessageModel to a domain ChatMessage entity.
func (m *ChatMessageModel) ToEntity() *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Sender:    entity.ChatSender(m.Sender),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ChatMessageFromEntity creates a ChatMessageModel from a domain ChatMessage entity.
func ChatMessageFromEntity(message *entity.ChatMessage) *ChatMessageModel {
	return &ChatMessageModel{
		ID:        message.ID,
		UserID:    message.UserID,
		Sender:    string(message.Sender),
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}
