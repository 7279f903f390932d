// Package errors provides structured error handling for the discovery
// engine. Errors carry a code so adapters can map them to transport status
// without string matching.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	// Server errors (5xx)
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
	CodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	CodeCacheError         ErrorCode = "CACHE_ERROR"

	// Generation errors. Network, quota and parse failures all surface
	// under one code: the orchestrator treats every failure as "no update".
	CodeGenerationFailed     ErrorCode = "GENERATION_FAILED"
	CodeGenerationInProgress ErrorCode = "GENERATION_IN_PROGRESS"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeGenerationInProgress:
		return http.StatusConflict
	case CodeCatalogUnavailable, CodeGenerationFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewGenerationError creates a generation failure error. Callers leave
// their caches unchanged and surface the existing empty or stale state.
func NewGenerationError(cause error) *AppError {
	return NewAppError(
		CodeGenerationFailed,
		"Recipe generation failed",
		"Failed to obtain recipes from the generation service",
	).WithCause(cause)
}

// NewGenerationInProgressError signals that a lane already has an
// outstanding request
func NewGenerationInProgressError(lane string) *AppError {
	return NewAppError(
		CodeGenerationInProgress,
		"A generation request is already in progress",
		fmt.Sprintf("Lane %s has an outstanding request", lane),
	).WithMetadata("lane", lane)
}

// NewCatalogError creates a catalog provider error
func NewCatalogError(cause error) *AppError {
	return NewAppError(
		CodeCatalogUnavailable,
		"Recipe catalog unavailable",
		"Failed to load the local recipe catalog",
	).WithCause(cause)
}

// NewCacheError creates a cache repository error
func NewCacheError(operation string, cause error) *AppError {
	return NewAppError(
		CodeCacheError,
		"Cache operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// IsCode reports whether err is an AppError carrying the given code
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
