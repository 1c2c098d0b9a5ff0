// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	// Also covers goals owned by another user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTarget is returned when the goal target amount is invalid.
	ErrInvalidGoalTarget = errors.New("goal target amount must be greater than zero")

	// ErrInvalidGoalContribution is returned when a contribution amount is invalid.
	ErrInvalidGoalContribution = errors.New("contribution amount must be greater than zero")

	// ErrInvalidGoalStatus is returned when the goal status is not a known value.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrGoalNameRequired is returned when a goal is created without a name.
	ErrGoalNameRequired = errors.New("goal name is required")

	// ErrInvalidGoalCurrent is returned when a current amount override is negative.
	ErrInvalidGoalCurrent = errors.New("goal current amount must not be negative")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOAL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNameRequired        GoalErrorCode = "GOAL-010001"
	ErrCodeInvalidGoalTarget       GoalErrorCode = "GOAL-010002"
	ErrCodeInvalidGoalContribution GoalErrorCode = "GOAL-010003"
	ErrCodeInvalidGoalStatus       GoalErrorCode = "GOAL-010004"
	ErrCodeGoalNotFound            GoalErrorCode = "GOAL-010005"
	ErrCodeInvalidGoalCurrent      GoalErrorCode = "GOAL-010006"
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
