package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/preferences"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/dto"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// PreferencesController handles user preferences endpoints.
type PreferencesController struct {
	getUseCase    *preferences.GetPreferencesUseCase
	updateUseCase *preferences.UpdatePreferencesUseCase
}

// NewPreferencesController creates a new preferences controller instance.
func NewPreferencesController(
	getUseCase *preferences.GetPreferencesUseCase,
	updateUseCase *preferences.UpdatePreferencesUseCase,
) *PreferencesController {
	return &PreferencesController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /preferences requests.
func (c *PreferencesController) Get(ctx *gin.Context) {
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
	output, err := c.getUseCase.Execute(ctx.Request.Context(), preferences.GetPreferencesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve preferences",
		})
		return
	}

	// Build response
	response := dto.ToPreferencesResponse(output.Preferences)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /preferences requests.
func (c *PreferencesController) Update(ctx *gin.Context) {
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
	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), preferences.UpdatePreferencesInput{
		UserID:           userID,
		CurrencyCode:     req.CurrencyCode,
		Locale:           req.Locale,
		NotifyByEmail:    req.NotifyByEmail,
		CustomCategories: req.CustomCategories,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update preferences",
		})
		return
	}

	// Build response
	response := dto.ToPreferencesResponse(output.Preferences)
	ctx.JSON(http.StatusOK, response)
}
