// Package errors provides structured error types for the ricodraw application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the converter's failure taxonomy:
//   - EMPTY_DIAGRAM, MALFORMED_DIAGRAM: structural problems in the input XML
//   - UNKNOWN_*: names absent from the ontology vocabulary
//   - NO_SOURCE, NO_TARGET, SOURCE_NOT_INDIVIDUAL: arrow endpoint resolution
//   - UNTREATED_*: identifier sanitization gaps
//   - INVALID_CONFIG: malformed configuration values
//   - INTERNAL_ERROR: unclassified failures from external tooling
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownClass, "not a RiC-O class: %s", name)
//	if errors.Is(err, errors.ErrCodeUnknownClass) {
//	    // Handle vocabulary error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedDiagram, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structural errors: the document does not match the expected shape
	ErrCodeEmptyDiagram     Code = "EMPTY_DIAGRAM"
	ErrCodeMalformedDiagram Code = "MALFORMED_DIAGRAM"

	// Vocabulary errors: a name is not in the ontology
	ErrCodeUnknownClass    Code = "UNKNOWN_CLASS"
	ErrCodeUnknownProperty Code = "UNKNOWN_PROPERTY"

	// Resolution errors: arrow endpoints cannot be determined
	ErrCodeNoSource            Code = "NO_SOURCE"
	ErrCodeNoTarget            Code = "NO_TARGET"
	ErrCodeSourceNotIndividual Code = "SOURCE_NOT_INDIVIDUAL"

	// Sanitization errors: a label cannot become a legal identifier
	ErrCodeUntreatedSpace         Code = "UNTREATED_SPACE"
	ErrCodeUntreatedMetacharacter Code = "UNTREATED_METACHARACTER"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
