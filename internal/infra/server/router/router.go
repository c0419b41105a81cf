// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/controller"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	dashboardController   *controller.DashboardController
	chatController        *controller.ChatController
	preferencesController *controller.PreferencesController
	chatRateLimiter       *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	chatController *controller.ChatController,
	preferencesController *controller.PreferencesController,
	chatRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		goalController:        goalController,
		dashboardController:   dashboardController,
		chatController:        chatController,
		preferencesController: preferencesController,
		chatRateLimiter:       chatRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.POST("/import", r.goalController.Import)
				goals.POST("/backfill-checkpoints", r.goalController.Backfill)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/contributions", r.goalController.Contribute)
				goals.POST("/:id/archive", r.goalController.Archive)
				goals.POST("/:id/restart", r.goalController.Restart)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}

		// Chat routes (require authentication; sends are rate limited)
		if r.chatController != nil && r.authMiddleware != nil {
			chat := v1.Group("/chat")
			chat.Use(r.authMiddleware.Authenticate())
			{
				chat.GET("/messages", r.chatController.History)
				if r.chatRateLimiter != nil {
					chat.POST("/messages", r.chatRateLimiter.Middleware(), r.chatController.Send)
				} else {
					chat.POST("/messages", r.chatController.Send)
				}
			}
		}

		// Preferences routes (require authentication)
		if r.preferencesController != nil && r.authMiddleware != nil {
			preferences := v1.Group("/preferences")
			preferences.Use(r.authMiddleware.Authenticate())
			{
				preferences.GET("", r.preferencesController.Get)
				preferences.PATCH("", r.preferencesController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
