package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeTransport indicates the backend could not be reached
	// (network unreachable, timeout). Surfaced as a generic retryable
	// notice; never retried automatically.
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeRejected indicates the backend answered with a non-2xx
	// status. The server-provided message, when present, is carried in
	// Message.
	ErrCodeRejected ErrorCode = "rejected"
	// ErrCodePersistence indicates a local durable-storage failure.
	// Never surfaced to the user; the session degrades to memory-only.
	ErrCodePersistence ErrorCode = "persistence"
	// ErrCodeMalformed indicates stored or decoded data that could not
	// be parsed. Treated as absence, not as a fatal condition.
	ErrCodeMalformed ErrorCode = "malformed"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Transport creates a new Transport error.
func Transport(message string) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
	}
}

// Rejected creates a new Rejected error carrying the server-provided message.
func Rejected(message string) *AppError {
	return &AppError{
		Code:    ErrCodeRejected,
		Message: message,
	}
}

// Malformed creates a new Malformed error.
func Malformed(message string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformed,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// IsRejected checks if an error is a Rejected error.
func IsRejected(err error) bool {
	return isCode(err, ErrCodeRejected)
}

// IsPersistence checks if an error is a Persistence error.
func IsPersistence(err error) bool {
	return isCode(err, ErrCodePersistence)
}

// IsMalformed checks if an error is a Malformed error.
func IsMalformed(err error) bool {
	return isCode(err, ErrCodeMalformed)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage renders an error as a user-facing notice. Transport failures
// collapse to a generic retryable message; rejections keep the server's
// message when one was provided.
func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "Something went wrong. Please try again."
	}
	switch appErr.Code {
	case ErrCodeTransport:
		return "Could not reach the store. Check your connection and try again."
	case ErrCodeRejected:
		if appErr.Message != "" {
			return appErr.Message
		}
		return "The store rejected the request. Please try again."
	case ErrCodeValidation:
		return appErr.Message
	default:
		return "Something went wrong. Please try again."
	}
}
