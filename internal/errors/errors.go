// Package errors provides domain-specific error types for the orion-sentinel application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeProfile indicates an error loading or parsing a profile document.
	ErrCodeProfile ErrorCode = "PROFILE_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeGateway indicates an error executing an operation against an instance.
	ErrCodeGateway ErrorCode = "GATEWAY_ERROR"

	// ErrCodeConnectivity indicates the reconciliation target is unreachable.
	ErrCodeConnectivity ErrorCode = "CONNECTIVITY_ERROR"

	// ErrCodeRebuild indicates the gravity rebuild failed or timed out.
	ErrCodeRebuild ErrorCode = "REBUILD_ERROR"

	// ErrCodeHealth indicates an error evaluating instance health.
	ErrCodeHealth ErrorCode = "HEALTH_ERROR"

	// ErrCodeEnv indicates an error reading or updating the stack environment file.
	ErrCodeEnv ErrorCode = "ENV_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewProfileError creates a new profile document error.
func NewProfileError(message string, cause error) *Error {
	return Wrap(ErrCodeProfile, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewGatewayError creates a new gateway operation error.
func NewGatewayError(message string, cause error) *Error {
	return Wrap(ErrCodeGateway, message, cause)
}

// NewConnectivityError creates a new connectivity verification error.
func NewConnectivityError(message string, cause error) *Error {
	return Wrap(ErrCodeConnectivity, message, cause)
}

// NewRebuildError creates a new gravity rebuild error.
func NewRebuildError(message string, cause error) *Error {
	return Wrap(ErrCodeRebuild, message, cause)
}

// NewHealthError creates a new health evaluation error.
func NewHealthError(message string, cause error) *Error {
	return Wrap(ErrCodeHealth, message, cause)
}

// NewEnvError creates a new environment file error.
func NewEnvError(message string, cause error) *Error {
	return Wrap(ErrCodeEnv, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
