// Package error defines domain-specific errors for the FinApp application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidFrequency is returned when a recurring transaction carries an unsupported frequency.
	ErrInvalidFrequency = errors.New("invalid recurrence frequency")

	// ErrMissingFrequency is returned when a recurring transaction has no frequency.
	ErrMissingFrequency = errors.New("recurring transaction requires a frequency")

	// ErrEndDateBeforeStart is returned when a recurrence end date precedes the transaction date.
	ErrEndDateBeforeStart = errors.New("end date precedes transaction date")

	// ErrInvalidWindow is returned when a listing window has end before start.
	ErrInvalidWindow = errors.New("window end precedes window start")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidFrequency         TransactionErrorCode = "TXN-010004"
	ErrCodeMissingFrequency         TransactionErrorCode = "TXN-010005"
	ErrCodeEndDateBeforeStart       TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidWindow            TransactionErrorCode = "TXN-010007"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010009"

	// Access errors (02XXXX)
	ErrCodeTransactionNotFound             TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedToModifyTransaction TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
