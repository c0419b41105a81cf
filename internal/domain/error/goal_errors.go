// Package error defines domain-specific errors for the FinApp application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is invalid (zero or negative).
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidMonthlyContribution is returned when the monthly contribution is negative.
	ErrInvalidMonthlyContribution = errors.New("invalid monthly contribution")

	// ErrInvalidContributionAmount is returned when a contribution amount is zero.
	ErrInvalidContributionAmount = errors.New("contribution amount must be non-zero")

	// ErrGoalArchived is returned when attempting to modify an archived goal.
	ErrGoalArchived = errors.New("goal is archived")

	// ErrGoalNotArchivable is returned when archiving a goal that is not completed.
	ErrGoalNotArchivable = errors.New("only completed goals can be archived")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound               GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidMonthlyContribution GoalErrorCode = "GOL-010003"
	ErrCodeInvalidContributionAmount  GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalName            GoalErrorCode = "GOL-010005"

	// Lifecycle errors (02XXXX)
	ErrCodeGoalArchived          GoalErrorCode = "GOL-020001"
	ErrCodeGoalNotArchivable     GoalErrorCode = "GOL-020002"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
