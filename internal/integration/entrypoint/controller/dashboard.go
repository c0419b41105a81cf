package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lopesbrenda/FinApp/internal/application/usecase/dashboard"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/dto"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
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
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard summary",
		})
		return
	}

	// Build response
	response := dto.ToDashboardSummaryResponse(output.Summary, output.Cached)
	ctx.JSON(http.StatusOK, response)
}
