package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrSequenceViolation indicates that a period closing was requested out of order.
var ErrSequenceViolation = errors.New("previous period not closed")

// AppError wraps an underlying error with a status code and message for transport layers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// SequenceViolationError reports a gap in the closing chain. It carries the
// period the caller must close first and the last period actually closed, so
// the client can tell the user exactly which closing is missing.
type SequenceViolationError struct {
	ClosingType    string
	ExpectedDate   time.Time
	LastClosedDate time.Time
}

func (e *SequenceViolationError) Error() string {
	return fmt.Sprintf("previous %s not closed: expected closing for %s, last closed is %s",
		e.ClosingType,
		e.ExpectedDate.Format("2006-01-02"),
		e.LastClosedDate.Format("2006-01-02"))
}

// Is lets errors.Is(err, ErrSequenceViolation) match the structured error.
func (e *SequenceViolationError) Is(target error) bool {
	return target == ErrSequenceViolation
}
