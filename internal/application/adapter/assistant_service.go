// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lopesbrenda/FinApp/internal/domain/entity"
)

// AssistantContext carries the user's financial snapshot the assistant may
// ground its reply in. Amounts are plain numbers already normalized to the
// user's currency.
type AssistantContext struct {
	CurrencyCode string
	Goals        []*entity.Goal
	Recent       []*entity.Occurrence
	History      []*entity.ChatMessage
}

// AssistantService defines the interface for the AI finance assistant.
type AssistantService interface {
	// IsAvailable reports whether the assistant is configured.
	IsAvailable() bool

	// Reply generates an assistant reply to the user's message.
	Reply(ctx context.Context, message string, assistantCtx *AssistantContext) (string, error)
}
