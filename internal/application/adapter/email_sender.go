// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueGoalCompletedInput represents the input for queueing a goal completion email.
type QueueGoalCompletedInput struct {
	UserEmail    string
	UserName     string
	GoalName     string
	TargetAmount float64
	CurrencyCode string
	GoalsURL     string
}

// QueueGoalBehindInput represents the input for queueing a behind-schedule email.
type QueueGoalBehindInput struct {
	UserEmail    string
	UserName     string
	GoalName     string
	MonthsBehind float64
	Difference   float64
	CurrencyCode string
	GoalsURL     string
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueGoalCompletedEmail queues a goal completion celebration email.
	QueueGoalCompletedEmail(ctx context.Context, input QueueGoalCompletedInput) error

	// QueueGoalBehindEmail queues a behind-schedule nudge email.
	QueueGoalBehindEmail(ctx context.Context, input QueueGoalBehindInput) error
}
