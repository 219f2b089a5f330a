package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure whose details must not reach the caller.
var ErrInternal = errors.New("internal error")

// Stable error codes carried by AppError. They identify failure categories
// in API responses without exposing storage error text.
const (
	CodeCompaniesNotFound = 10000
	CodeCompanyNotFound   = 10001
	CodeTransfersNotFound = 10010
	CodeTransferNotFound  = 10011
	CodeInternalFailure   = 50000
)

// AppError pairs a stable code and a caller-safe message with the underlying
// cause. The cause is for logs only; handlers render Code and Message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (code %d): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
