// Package domainerrors provides coded errors shared across bounded contexts.
//
// Every rejection carries a stable, enumerable code plus a human-readable
// message so transport layers can render remediation hints without
// re-deriving the rule that fired.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of domain error.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"

	// Compliance-specific codes.
	CodeValidation          Code = "validation_error"
	CodeIncompleteChecklist Code = "incomplete_checklist"
	CodeInvalidTransition   Code = "invalid_transition"
	CodeStaleWrite          Code = "stale_write"
	CodeLookupFailure       Code = "lookup_failure"
	CodeNoSuggestion        Code = "no_suggestion"
)

// Error is a coded domain error. Fields carries the offending or missing
// field names for checklist and validation rejections.
type Error struct {
	Code    Code
	Message string
	Fields  []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with a message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewWithFields creates a coded error naming the fields that caused it.
// Checklist rejections use this to report every missing item at once.
func NewWithFields(code Code, message string, fields []string) *Error {
	return &Error{Code: code, Message: message, Fields: fields}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// FieldsOf returns the field list of a coded error, or nil for other errors.
func FieldsOf(err error) []string {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// CodeOf returns the code of a coded error, or CodeInternal for other errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
