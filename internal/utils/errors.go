package utils

import "fmt"

// AppError is the error shape used across the service: the operation that
// failed, a message fit for logs and API consumers, and an optional cause.
type AppError struct {
	Op  string
	Msg string
	Err error
}

// Error renders "op: msg" with the cause appended when present.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError. err may be nil when there is no cause.
func NewAppError(op, msg string, err error) error {
	return &AppError{Op: op, Msg: msg, Err: err}
}
