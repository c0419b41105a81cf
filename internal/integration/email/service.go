// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
	"github.com/lopesbrenda/FinApp/internal/domain/entity"
	domainerror "github.com/lopesbrenda/FinApp/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueGoalCompletedEmail queues a goal completion celebration email.
func (s *Service) QueueGoalCompletedEmail(ctx context.Context, input adapter.QueueGoalCompletedInput) error {
	subject := fmt.Sprintf("You reached your goal %q - FinApp", input.GoalName)

	goalsURL := input.GoalsURL
	if goalsURL == "" {
		goalsURL = s.appBaseURL + "/goals"
	}

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"goal_name":     input.GoalName,
		"target_amount": input.TargetAmount,
		"currency_code": input.CurrencyCode,
		"goals_url":     goalsURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateGoalCompleted,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue goal completion email",
			err,
		)
	}

	return nil
}

// QueueGoalBehindEmail queues a behind-schedule nudge email.
func (s *Service) QueueGoalBehindEmail(ctx context.Context, input adapter.QueueGoalBehindInput) error {
	subject := fmt.Sprintf("Your goal %q is falling behind - FinApp", input.GoalName)

	goalsURL := input.GoalsURL
	if goalsURL == "" {
		goalsURL = s.appBaseURL + "/goals"
	}

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"goal_name":     input.GoalName,
		"months_behind": input.MonthsBehind,
		"difference":    input.Difference,
		"currency_code": input.CurrencyCode,
		"goals_url":     goalsURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateGoalBehind,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue behind-schedule email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
