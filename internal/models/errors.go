package models

import (
	"errors"
	"fmt"
)

// AppError represents a custom application error with a stable code.
type AppError struct {
	Code    string
	Message string
	Err     error
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

// Error codes for the enumerated failure modes.
const (
	CodeUnknownEntity     = "UNKNOWN_ENTITY"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeInvalidDraft      = "INVALID_DRAFT"
	CodeInvalidInput      = "INVALID_INPUT"
)

// Predefined error constructors
func NewUnknownEntityError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeUnknownEntity,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewIllegalTransitionError(from, to RequestStatus) *AppError {
	return &AppError{
		Code:    CodeIllegalTransition,
		Message: fmt.Sprintf("cannot transition join request from %q to %q", from, to),
	}
}

func NewInvalidDraftError(field string) *AppError {
	return &AppError{
		Code:    CodeInvalidDraft,
		Message: fmt.Sprintf("startup draft is missing required field %q", field),
	}
}

func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// ErrorCode extracts the AppError code from err, or empty when err is not
// an AppError.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
