// Package chat contains the finance assistant chat use cases.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/recurrence"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/domain/valueobject"
)

const (
	// MaxMessageLength is the maximum allowed length for a chat message.
	MaxMessageLength = 2000
	// historyLimit caps the conversation history handed to the assistant.
	historyLimit = 20
	// recentDays is how far back recent transactions are gathered for grounding.
	recentDays = 90
)

// SendMessageInput represents the input for sending a chat message.
type SendMessageInput struct {
	UserID  uuid.UUID
	Message string
}

// SendMessageOutput represents the output of sending a chat message.
type SendMessageOutput struct {
	UserMessage      *entity.ChatMessage
	AssistantMessage *entity.ChatMessage
}

// SendMessageUseCase persists the user's message, asks the assistant for a
// reply grounded in the user's goals and recent transactions, and persists
// the reply.
type SendMessageUseCase struct {
	chatRepo        adapter.ChatRepository
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
	prefsRepo       adapter.PreferencesRepository
	assistant       adapter.AssistantService
	expander        *recurrence.Expander
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(
	chatRepo adapter.ChatRepository,
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
	prefsRepo adapter.PreferencesRepository,
	assistant adapter.AssistantService,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		chatRepo:        chatRepo,
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		prefsRepo:       prefsRepo,
		assistant:       assistant,
		expander:        recurrence.NewExpander(),
	}
}

// Execute handles one round of the finance chat.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyChatMessage,
			"message cannot be empty",
			domainerror.ErrEmptyChatMessage,
		)
	}
	if len(message) > MaxMessageLength {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeChatMessageTooLong,
			fmt.Sprintf("message must not exceed %d characters", MaxMessageLength),
			domainerror.ErrChatMessageTooLong,
		)
	}

	if uc.assistant == nil || !uc.assistant.IsAvailable() {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant is not configured",
			domainerror.ErrAssistantUnavailable,
		)
	}

	userMessage := entity.NewChatMessage(input.UserID, entity.ChatSenderUser, message)
	if err := uc.chatRepo.Create(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	assistantCtx := uc.buildContext(ctx, input.UserID)

	reply, err := uc.assistant.Reply(ctx, message, assistantCtx)
	if err != nil {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAssistantUnavailable,
			"assistant failed to reply",
			err,
		)
	}

	assistantMessage := entity.NewChatMessage(input.UserID, entity.ChatSenderAssistant, reply)
	if err := uc.chatRepo.Create(ctx, assistantMessage); err != nil {
		return nil, fmt.Errorf("failed to store assistant reply: %w", err)
	}

	return &SendMessageOutput{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// buildContext gathers the financial snapshot the assistant grounds its reply
// in. Each source is best-effort; a failed lookup shrinks the context instead
// of failing the chat.
func (uc *SendMessageUseCase) buildContext(ctx context.Context, userID uuid.UUID) *adapter.AssistantContext {
	assistantCtx := &adapter.AssistantContext{CurrencyCode: entity.DefaultCurrencyCode}

	if prefs, err := uc.prefsRepo.FindByUserID(ctx, userID); err != nil {
		slog.Warn("Failed to load preferences for chat context", "userID", userID, "error", err)
	} else if prefs != nil {
		assistantCtx.CurrencyCode = prefs.CurrencyCode
	}

	if goals, err := uc.goalRepo.FindByUserID(ctx, userID); err != nil {
		slog.Warn("Failed to load goals for chat context", "userID", userID, "error", err)
	} else {
		assistantCtx.Goals = goals
	}

	today := valueobject.CalendarDate(time.Now().UTC())
	if transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID}); err != nil {
		slog.Warn("Failed to load transactions for chat context", "userID", userID, "error", err)
	} else {
		window := &recurrence.Window{Start: today.AddDate(0, 0, -recentDays), End: today}
		assistantCtx.Recent = uc.expander.Expand(transactions, window, today)
	}

	if history, err := uc.chatRepo.FindByUser(ctx, userID); err != nil {
		slog.Warn("Failed to load chat history for context", "userID", userID, "error", err)
	} else {
		if len(history) > historyLimit {
			history = history[len(history)-historyLimit:]
		}
		assistantCtx.History = history
	}

	return assistantCtx
}
