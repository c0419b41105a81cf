package dto

import (
	"time"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// SendChatMessageRequest represents the request body for sending a chat
// message to the finance assistant.
type SendChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse represents a single chat message in API responses.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SendChatMessageResponse represents the response for sending a chat message.
type SendChatMessageResponse struct {
	UserMessage      ChatMessageResponse `json:"user_message"`
	AssistantMessage ChatMessageResponse `json:"assistant_message"`
}

// ChatHistoryResponse represents the response for listing chat history.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a domain ChatMessage to its DTO form.
func ToChatMessageResponse(m *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID.String(),
		Sender:    string(m.Sender),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToChatHistoryResponse converts a list of chat messages to a
// ChatHistoryResponse.
func ToChatHistoryResponse(messages []*entity.ChatMessage) ChatHistoryResponse {
	out := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = ToChatMessageResponse(m)
	}
	return ChatHistoryResponse{
		Messages: out,
	}
}
