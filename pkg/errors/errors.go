package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// ErrorType represents the closed set of failure kinds the view layer distinguishes
type ErrorType string

const (
	// ErrorTypeNetworkUnavailable indicates the remote API could not be reached
	ErrorTypeNetworkUnavailable ErrorType = "NETWORK_UNAVAILABLE"

	// ErrorTypeServerRejected indicates the remote API answered with a non-2xx status
	ErrorTypeServerRejected ErrorType = "SERVER_REJECTED"

	// ErrorTypeMalformedResponse indicates the response body could not be decoded
	ErrorTypeMalformedResponse ErrorType = "MALFORMED_RESPONSE"

	// ErrorTypeValidation indicates user input was rejected before any request was sent
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeCanceled indicates the screen activation ended while the request was in flight
	ErrorTypeCanceled ErrorType = "CANCELED"

	// ErrorTypeNotFound indicates a route or entity that does not exist locally
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Status  int
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := e.Message
	if e.Type == ErrorTypeServerRejected && e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNetworkUnavailableError creates a new network error
func NewNetworkUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeNetworkUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewServerRejectedError creates a new rejection error carrying the HTTP status
func NewServerRejectedError(message string, status int) *AppError {
	return &AppError{
		Type:    ErrorTypeServerRejected,
		Message: message,
		Status:  status,
	}
}

// NewMalformedResponseError creates a new decoding error
func NewMalformedResponseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedResponse,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewCanceledError creates a new cancellation error
func NewCanceledError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeCanceled,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// TypeOf returns the kind of err. Context cancellation is reported as
// ErrorTypeCanceled even when it was never wrapped in an AppError; any other
// unclassified error is treated as a transport failure.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	if stderrors.Is(err, context.Canceled) {
		return ErrorTypeCanceled
	}
	return ErrorTypeNetworkUnavailable
}

// StatusOf returns the HTTP status of a server rejection, or 0.
func StatusOf(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// IsRetryable reports whether a retry could succeed without user involvement.
func IsRetryable(err error) bool {
	return TypeOf(err) == ErrorTypeNetworkUnavailable
}

// Is reports whether err is of kind t.
func Is(err error, t ErrorType) bool {
	return err != nil && TypeOf(err) == t
}
