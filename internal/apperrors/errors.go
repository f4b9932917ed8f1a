// Package apperrors defines the gateway's error taxonomy and its mapping
// onto HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	CodeTooManyRequests     ErrorCode = "TOO_MANY_REQUESTS"
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code    ErrorCode
	Message string
	Details string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status the error maps to
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a user-correctable request error
func NewValidationError(details string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: "Validation failed", Details: details}
}

// NewInvalidCredentialsError creates the generic login rejection
func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid credentials"}
}

// NewTooManyRequestsError creates a rate limit rejection
func NewTooManyRequestsError(details string) *AppError {
	return &AppError{Code: CodeTooManyRequests, Message: "Rate limit exceeded", Details: details}
}

// NewUpstreamError wraps a fault talking to a remote service
func NewUpstreamError(service string, cause error) *AppError {
	return &AppError{
		Code:    CodeUpstreamUnavailable,
		Message: "Upstream unavailable",
		Details: service,
		Cause:   cause,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: "An unexpected error occurred", Cause: cause}
}

// Is reports whether any error in err's chain is an AppError with the given code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// From returns err as an AppError, wrapping unknown errors as internal faults
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails is the client-visible part of an AppError. Causes are never
// exposed.
type ErrorDetails struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	details := err.Details
	// Upstream and internal details name collaborators and are kept for logs only
	if err.Code == CodeUpstreamUnavailable || err.Code == CodeInternal {
		details = ""
	}
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   details,
			RequestID: requestID,
			Timestamp: time.Now().Unix(),
		},
	}
}
