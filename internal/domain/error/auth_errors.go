// Package error defines domain-specific errors for the FinApp application.
package error

import "errors"

// Auth domain errors. FinApp does not issue tokens itself; these cover bearer
// token validation and request throttling at the API boundary.
var (
	// ErrMissingToken is returned when no bearer token is supplied.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a bearer token has expired.
	ErrExpiredToken = errors.New("expired token")

	// ErrRateLimited is returned when a client exceeds the request rate limit.
	ErrRateLimited = errors.New("rate limited")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-030001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030002"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030003"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
