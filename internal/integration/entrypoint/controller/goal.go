// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/goal"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/dto"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase       *goal.ListGoalsUseCase
	createUseCase     *goal.CreateGoalUseCase
	getUseCase        *goal.GetGoalUseCase
	updateUseCase     *goal.UpdateGoalUseCase
	deleteUseCase     *goal.DeleteGoalUseCase
	contributeUseCase *goal.AddContributionUseCase
	archiveUseCase    *goal.ArchiveGoalUseCase
	restartUseCase    *goal.RestartGoalUseCase
	importUseCase     *goal.ImportGoalsUseCase
	backfillUseCase   *goal.BackfillCheckpointsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.AddContributionUseCase,
	archiveUseCase *goal.ArchiveGoalUseCase,
	restartUseCase *goal.RestartGoalUseCase,
	importUseCase *goal.ImportGoalsUseCase,
	backfillUseCase *goal.BackfillCheckpointsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
		archiveUseCase:    archiveUseCase,
		restartUseCase:    restartUseCase,
		importUseCase:     importUseCase,
		backfillUseCase:   backfillUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
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
	input := goal.ListGoalsInput{
		UserID:          userID,
		IncludeArchived: ctx.Query("include_archived") == "true",
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	// Build response
	response := dto.ToGoalListResponse(output.Goals)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
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
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalName),
		})
		return
	}

	// Build input
	input := goal.CreateGoalInput{
		UserID:              userID,
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		MonthlyContribution: req.MonthlyContribution,
	}

	// Parse due date if provided
	if req.DueDate != nil {
		dueDate, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format, expected YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Build input
	input := goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	}

	// Optional what-if amount for the completion projection
	if raw := ctx.Query("extra_amount"); raw != "" {
		extra, err := strconv.ParseFloat(raw, 64)
		if err != nil || extra <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "extra_amount must be a positive number",
			})
			return
		}
		input.ExtraAmount = &extra
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalWithDerivedResponse(output.Goal)
	response.ExtraImpact = dto.ToExtraImpactResponse(output.ExtraImpact)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := goal.UpdateGoalInput{
		GoalID:              goalID,
		UserID:              userID,
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		MonthlyContribution: req.MonthlyContribution,
		ClearDueDate:        req.ClearDueDate,
	}

	// Parse due date if provided
	if req.DueDate != nil {
		dueDate, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format, expected YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Build input
	input := goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}

	// Execute use case
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /goals/:id/contributions requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.AddContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidContributionAmount),
		})
		return
	}

	userEmail, _ := middleware.GetUserEmailFromContext(ctx)

	// Build input
	input := goal.AddContributionInput{
		GoalID:    goalID,
		UserID:    userID,
		UserEmail: userEmail,
		UserName:  displayNameFromEmail(userEmail),
		Amount:    req.Amount,
		Note:      req.Note,
	}

	// Parse contribution date if provided
	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid contribution date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	// Execute use case
	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ContributionResultResponse{
		Goal:   dto.ToGoalResponse(output.Goal),
		Events: dto.ToGoalEventResponses(output.Events),
	}
	ctx.JSON(http.StatusOK, response)
}

// Archive handles POST /goals/:id/archive requests.
func (c *GoalController) Archive(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Execute use case
	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), goal.ArchiveGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Restart handles POST /goals/:id/restart requests.
func (c *GoalController) Restart(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Execute use case
	output, err := c.restartUseCase.Execute(ctx.Request.Context(), goal.RestartGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Import handles POST /goals/import requests.
func (c *GoalController) Import(ctx *gin.Context) {
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
	var req dto.ImportGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.importUseCase.Execute(ctx.Request.Context(), goal.ImportGoalsInput{
		UserID: userID,
		Goals:  req.Goals,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ImportGoalsResponse{
		Imported: len(output.Imported),
		Goals:    make([]dto.GoalResponse, len(output.Imported)),
	}
	for i, g := range output.Imported {
		response.Goals[i] = dto.ToGoalResponse(g)
	}
	ctx.JSON(http.StatusCreated, response)
}

// Backfill handles POST /goals/backfill-checkpoints requests.
func (c *GoalController) Backfill(ctx *gin.Context) {
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
	output, err := c.backfillUseCase.Execute(ctx.Request.Context(), goal.BackfillCheckpointsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.BackfillCheckpointsResponse{
		Scanned:    output.Scanned,
		Backfilled: output.Backfilled,
	}
	ctx.JSON(http.StatusOK, response)
}

// displayNameFromEmail derives a display name from the email local part.
func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalArchived, domainerror.ErrCodeGoalNotArchivable:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidMonthlyContribution,
		domainerror.ErrCodeInvalidContributionAmount,
		domainerror.ErrCodeMissingGoalName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
