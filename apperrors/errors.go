// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package apperrors defines typed application errors and their HTTP status.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of an application error
type ErrorType string

const (
	// ErrorTypeConfiguration is raised while wiring handlers, never per request
	ErrorTypeConfiguration ErrorType = "CONFIGURATION"

	// ErrorTypeValidation indicates malformed submission data
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a missing record
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInternal indicates a storage or rendering failure
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// ErrImproperlyConfigured is the sentinel matched by configuration errors.
var ErrImproperlyConfigured = errors.New("improperly configured")

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Fields  map[string][]string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match configuration errors against ErrImproperlyConfigured.
func (e *AppError) Is(target error) bool {
	return target == ErrImproperlyConfigured && e.Type == ErrorTypeConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying field-level messages
func NewValidationError(message string, fields map[string][]string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal for foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

// HTTPStatus maps an error to the status code reported to the client.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FieldErrors returns the field-level messages of a validation error.
func FieldErrors(err error) map[string][]string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Fields != nil {
		return appErr.Fields
	}
	return map[string][]string{}
}
