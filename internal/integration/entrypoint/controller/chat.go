package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/chat"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/dto"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// ChatController handles finance assistant chat endpoints.
type ChatController struct {
	sendUseCase *chat.SendMessageUseCase
	listUseCase *chat.ListMessagesUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(
	sendUseCase *chat.SendMessageUseCase,
	listUseCase *chat.ListMessagesUseCase,
) *ChatController {
	return &ChatController{
		sendUseCase: sendUseCase,
		listUseCase: listUseCase,
	}
}

// Send handles POST /chat/messages requests.
func (c *ChatController) Send(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.SendChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyChatMessage),
		})
		return
	}

	// Execute use case
	output, err := c.sendUseCase.Execute(ctx.Request.Context(), chat.SendMessageInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	// Build response
	response := dto.SendChatMessageResponse{
		UserMessage:      dto.ToChatMessageResponse(output.UserMessage),
		AssistantMessage: dto.ToChatMessageResponse(output.AssistantMessage),
	}
	ctx.JSON(http.StatusOK, response)
}

// History handles GET /chat/messages requests.
func (c *ChatController) History(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), chat.ListMessagesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve chat history",
		})
		return
	}

	// Build response
	response := dto.ToChatHistoryResponse(output.Messages)
	ctx.JSON(http.StatusOK, response)
}

// handleChatError handles chat errors and returns appropriate HTTP responses.
func (c *ChatController) handleChatError(ctx *gin.Context, err error) {
	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		statusCode := c.getStatusCodeForChatError(chatErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForChatError maps chat error codes to HTTP status codes.
func (c *ChatController) getStatusCodeForChatError(code domainerror.ChatErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyChatMessage, domainerror.ErrCodeChatMessageTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeAssistantUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
