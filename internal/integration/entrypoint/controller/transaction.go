package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/transaction"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/dto"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. Recurring definitions are expanded
// into occurrences inside the requested window.
func (c *TransactionController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Build input
	input := transaction.ListTransactionsInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	// Parse optional window bounds
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse(time.DateOnly, endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}

	// Parse optional type filter
	if typeStr := ctx.Query("type"); typeStr != "" {
		transactionType := entity.TransactionType(typeStr)
		if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction type filter",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = &transactionType
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	response := dto.ToOccurrenceListResponse(output.Occurrences)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
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
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Parse transaction date
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	// Build input
	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
	}

	if req.Frequency != nil {
		input.Frequency = entity.Frequency(*req.Frequency)
	}

	// Parse end date if provided
	if req.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.EndDate = &endDate
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		Notes:         req.Notes,
		IsRecurring:   req.IsRecurring,
		ClearEndDate:  req.ClearEndDate,
	}

	// Parse optional date fields
	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.EndDate = &endDate
	}

	// Convert enum fields if provided
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	// Build input
	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	// Execute use case
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		statusCode := c.getStatusCodeForTransactionError(transactionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedToModifyTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeMissingFrequency,
		domainerror.ErrCodeEndDateBeforeStart,
		domainerror.ErrCodeInvalidWindow,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeNotesTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
