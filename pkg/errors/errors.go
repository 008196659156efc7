// Package errors provides the build failure model for scrgen.
//
// Every failure that terminates a build step is an *Error carrying a
// machine-readable code, a human-readable message, an optional cause and,
// for failures that originate in a source file, a Location.
//
// # Error Codes
//
// Codes fall into three groups:
//   - configuration errors raised before any generation work starts
//   - generation errors translated from the descriptor generator
//   - internal errors that indicate a programming mistake
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownSpecVersion, "Unknown spec version specified: %s", v)
//	if errors.Is(err, errors.ErrCodeUnknownSpecVersion) {
//	    // Handle configuration error
//	}
//
//	// Attach the originating source location
//	err := errors.Wrap(errors.ErrCodeGeneration, cause, "%s", msg).At(errors.Location{File: "Foo.java", Line: 42})
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeMissingSourceDir   Code = "MISSING_SOURCE_DIR"
	ErrCodeInvalidSourceDir   Code = "INVALID_SOURCE_DIR"
	ErrCodeMissingOutputDir   Code = "MISSING_OUTPUT_DIR"
	ErrCodeUnknownSpecVersion Code = "UNKNOWN_SPEC_VERSION"
	ErrCodeInvalidPattern     Code = "INVALID_PATTERN"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeUnknownGenerator   Code = "UNKNOWN_GENERATOR"

	// Generation errors
	ErrCodeGeneration Code = "GENERATION_FAILED"
	ErrCodeFatal      Code = "GENERATION_FATAL"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Location identifies a position in a source file.
type Location struct {
	File string
	Line int
}

// String formats the location as "file:line", or just "file" when the line is unknown.
func (l Location) String() string {
	if l.Line <= 0 {
		return l.File
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// Error is a structured build failure with a code, optional cause and optional location.
type Error struct {
	Code     Code      // Machine-readable error code
	Message  string    // Human-readable message
	Cause    error     // Underlying error (optional)
	Location *Location // Originating source position (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Location != nil {
		return e.Location.String() + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// At returns e with loc attached as its location.
func (e *Error) At(loc Location) *Error {
	e.Location = &loc
	return e
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

// As is errors.As from the standard library, re-exported so callers that
// import this package as "errors" keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
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

// LocationOf returns the location attached to the first *Error in err's chain.
func LocationOf(err error) (Location, bool) {
	var e *Error
	if errors.As(err, &e) && e.Location != nil {
		return *e.Location, true
	}
	return Location{}, false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message prefixed by its location when one is attached.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Location != nil {
			return e.Location.String() + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}
