// Package errors provides the coded error taxonomy shared by the letter engine
// and the API layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies a validation failure class.
type ErrorCode string

const (
	ErrCodeInvalidLetterType      ErrorCode = "INVALID_LETTER_TYPE"
	ErrCodeMissingRequiredField   ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrCodeMissingReason          ErrorCode = "MISSING_REASON"
	ErrCodeReasonTypeMismatch     ErrorCode = "REASON_TYPE_MISMATCH"
	ErrCodeReasonNotFound         ErrorCode = "REASON_NOT_FOUND"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
)

// StandardError is a structured, caller-recoverable error. Every letter
// validation failure is deterministic and non-retryable: the human filling the
// form corrects the input and submits again.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("StandardError[%s]: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInvalidLetterTypeError reports an unknown letter type.
func NewInvalidLetterTypeError(letterType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidLetterType,
		Message:   "Unknown letter type",
		Details:   fmt.Sprintf("letterType: %s", letterType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingRequiredFieldError reports an empty required field. Field carries
// the exact field name the caller must fill.
func NewMissingRequiredFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredField,
		Message:   "Required field is empty",
		Field:     field,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingReasonError reports an absent reason selection.
func NewMissingReasonError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingReason,
		Message:   "No reason selected",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReasonTypeMismatchError reports a reason key that belongs to the other
// letter type's catalog.
func NewReasonTypeMismatchError(key, letterType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReasonTypeMismatch,
		Message:   "Reason does not belong to the selected letter type",
		Details:   fmt.Sprintf("reason: %s, letterType: %s", key, letterType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReasonNotFoundError reports a reason key absent from a catalog.
func NewReasonNotFoundError(catalog, key string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReasonNotFound,
		Message:   "Reason not found in catalog",
		Details:   fmt.Sprintf("catalog: %s, reason: %s", catalog, key),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError reports a request body rejected by a letter
// type's input schema.
func NewSchemaValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Request does not match the letter type's input schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandard unwraps err to a *StandardError when possible.
func AsStandard(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// HTTPStatus maps an error code to the status the API layer responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeReasonNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidLetterType,
		ErrCodeMissingRequiredField,
		ErrCodeMissingReason,
		ErrCodeReasonTypeMismatch,
		ErrCodeSchemaValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
