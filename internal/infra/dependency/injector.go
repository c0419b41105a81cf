// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lopesbrenda/FinApp/config"
	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/chat"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/dashboard"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/goal"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/preferences"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/transaction"
	"github.com/lopesbrenda/FinApp/internal/infra/server/router"
	"github.com/lopesbrenda/FinApp/internal/integration/adapters"
	"github.com/lopesbrenda/FinApp/internal/integration/cache"
	"github.com/lopesbrenda/FinApp/internal/integration/email"
	"github.com/lopesbrenda/FinApp/internal/integration/email/templates"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/controller"
	"github.com/lopesbrenda/FinApp/internal/integration/entrypoint/middleware"
	"github.com/lopesbrenda/FinApp/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil; the dashboard summary then skips caching.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	chatRepo := persistence.NewChatRepository(db)
	prefsRepo := persistence.NewPreferencesRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	assistantService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)

	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient, cfg.Redis.SummaryTTL)
	}

	// Create email service and worker. Without a Resend key the worker sends
	// through the mock sender, which only logs.
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	goalsURL := cfg.Email.AppBaseURL + "/goals"

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addContributionUseCase := goal.NewAddContributionUseCase(goalRepo, prefsRepo, emailService, summaryCache, goalsURL)
	archiveGoalUseCase := goal.NewArchiveGoalUseCase(goalRepo)
	restartGoalUseCase := goal.NewRestartGoalUseCase(goalRepo)
	importGoalsUseCase := goal.NewImportGoalsUseCase(goalRepo)
	backfillCheckpointsUseCase := goal.NewBackfillCheckpointsUseCase(goalRepo)

	// Create dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, goalRepo, summaryCache)

	// Create chat use cases
	sendMessageUseCase := chat.NewSendMessageUseCase(chatRepo, goalRepo, transactionRepo, prefsRepo, assistantService)
	listMessagesUseCase := chat.NewListMessagesUseCase(chatRepo)

	// Create preferences use cases
	getPreferencesUseCase := preferences.NewGetPreferencesUseCase(prefsRepo)
	updatePreferencesUseCase := preferences.NewUpdatePreferencesUseCase(prefsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addContributionUseCase,
		archiveGoalUseCase,
		restartGoalUseCase,
		importGoalsUseCase,
		backfillCheckpointsUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	chatController := controller.NewChatController(sendMessageUseCase, listMessagesUseCase)

	preferencesController := controller.NewPreferencesController(getPreferencesUseCase, updatePreferencesUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var chatRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		chatRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		chatRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		goalController,
		dashboardController,
		chatController,
		preferencesController,
		chatRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
