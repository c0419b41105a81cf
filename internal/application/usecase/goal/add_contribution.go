package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/application/usecase/projection"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// AddContributionInput represents the input for adding a contribution.
type AddContributionInput struct {
	GoalID    uuid.UUID
	UserID    uuid.UUID
	UserEmail string
	UserName  string
	Amount    float64
	Date      *time.Time // Optional, defaults to now
	Note      string
}

// AddContributionOutput represents the output of adding a contribution.
type AddContributionOutput struct {
	Goal   *entity.Goal
	Events []entity.GoalEvent
}

// AddContributionUseCase handles contribution recording logic.
type AddContributionUseCase struct {
	goalRepo     adapter.GoalRepository
	prefsRepo    adapter.PreferencesRepository
	emailService adapter.EmailService
	summaryCache adapter.SummaryCache
	goalsURL     string
}

// NewAddContributionUseCase creates a new AddContributionUseCase instance.
func NewAddContributionUseCase(
	goalRepo adapter.GoalRepository,
	prefsRepo adapter.PreferencesRepository,
	emailService adapter.EmailService,
	summaryCache adapter.SummaryCache,
	goalsURL string,
) *AddContributionUseCase {
	return &AddContributionUseCase{
		goalRepo:     goalRepo,
		prefsRepo:    prefsRepo,
		emailService: emailService,
		summaryCache: summaryCache,
		goalsURL:     goalsURL,
	}
}

// Execute records a contribution against a goal. When the contribution takes
// the goal across its target, a celebration email is queued for users who
// opted into email notifications.
func (uc *AddContributionUseCase) Execute(ctx context.Context, input AddContributionInput) (*AddContributionOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	now := time.Now().UTC()
	contribution := entity.Contribution{
		Amount: input.Amount,
		Note:   input.Note,
		Date:   now,
	}
	if input.Date != nil {
		contribution.Date = *input.Date
	}

	// Status against the old checkpoint; the contribution re-anchors it.
	priorStatus := projection.CalculateStatus(goal, now)

	updated, events, err := ApplyContribution(goal, contribution, now)
	if err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	for _, event := range events {
		if event.Type == entity.GoalEventCompleted {
			uc.notify(ctx, updated, input.UserEmail, input.UserName, nil)
		}
	}
	if !updated.IsComplete() && priorStatus.Kind == projection.StatusBehind {
		uc.notify(ctx, updated, input.UserEmail, input.UserName, priorStatus)
	}

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate dashboard summary cache",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return &AddContributionOutput{
		Goal:   updated,
		Events: events,
	}, nil
}

// notify queues a goal notification email: a celebration when status is nil,
// a behind-schedule nudge otherwise. Notification failures never fail the
// contribution.
func (uc *AddContributionUseCase) notify(ctx context.Context, goal *entity.Goal, userEmail, userName string, status *projection.Status) {
	if uc.emailService == nil || userEmail == "" {
		return
	}

	currencyCode := entity.DefaultCurrencyCode
	wanted := true
	if uc.prefsRepo != nil {
		if prefs, err := uc.prefsRepo.FindByUserID(ctx, goal.UserID); err != nil {
			slog.Warn("Failed to load user preferences for goal notification",
				"userID", goal.UserID,
				"error", err,
			)
		} else if prefs != nil {
			currencyCode = prefs.CurrencyCode
			wanted = prefs.NotifyByEmail
		}
	}
	if !wanted {
		return
	}

	var err error
	if status == nil {
		err = uc.emailService.QueueGoalCompletedEmail(ctx, adapter.QueueGoalCompletedInput{
			UserEmail:    userEmail,
			UserName:     userName,
			GoalName:     goal.Name,
			TargetAmount: goal.TargetAmount,
			CurrencyCode: currencyCode,
			GoalsURL:     uc.goalsURL,
		})
	} else {
		err = uc.emailService.QueueGoalBehindEmail(ctx, adapter.QueueGoalBehindInput{
			UserEmail:    userEmail,
			UserName:     userName,
			GoalName:     goal.Name,
			MonthsBehind: float64(status.MonthsBehind),
			Difference:   status.Difference,
			CurrencyCode: currencyCode,
			GoalsURL:     uc.goalsURL,
		})
	}
	if err != nil {
		slog.Error("Failed to queue goal notification email",
			"goalID", goal.ID,
			"userID", goal.UserID,
			"error", err,
		)
	}
}
