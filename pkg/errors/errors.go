// Package errors provides custom error types for the application.
// It defines domain-specific errors with error codes for better error handling
// and actionable CLI diagnostics.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents application error codes
type ErrorCode string

// Error codes for different error categories
const (
	// General errors (1xxx)
	ErrCodeInternal ErrorCode = "E1000"

	// Dataset errors (2xxx)
	ErrCodeDatasetRead      ErrorCode = "E2001"
	ErrCodeDatasetMalformed ErrorCode = "E2002"

	// Database errors (3xxx)
	ErrCodeDBConnection ErrorCode = "E3001"
	ErrCodeDBQuery      ErrorCode = "E3002"

	// Export errors (4xxx)
	ErrCodeExportFormat ErrorCode = "E4001"
	ErrCodeExportWrite  ErrorCode = "E4002"
	ErrCodeExportRender ErrorCode = "E4003"

	// Configuration errors (5xxx)
	ErrCodeConfigNotFound ErrorCode = "E5001"
	ErrCodeConfigInvalid  ErrorCode = "E5002"
	ErrCodeConfigParse    ErrorCode = "E5003"
)

// Exit codes for application startup failures
const (
	// ExitCodeConfigValidation indicates configuration validation failure
	ExitCodeConfigValidation = 2
)

// AppError represents an application-level error with code and context
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
	Details any       `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// CodeOf extracts the error code from an error chain.
// Returns ErrCodeInternal when the chain contains no AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// Is reports whether any error in err's chain matches target.
// Provided so callers do not need to import both this package and the
// standard library errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
