package generator

import "fmt"

// Kind distinguishes the two failure variants a generator may report.
type Kind int

const (
	// KindDescriptor is a generation problem, optionally tied to a source location.
	KindDescriptor Kind = iota
	// KindFatal means generation could not be attempted.
	KindFatal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDescriptor:
		return "descriptor"
	case KindFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Failure is a generator-reported error.
//
// SourceLocation and LineNumber are only meaningful for KindDescriptor;
// fatal failures are never reported with a location.
type Failure struct {
	Kind           Kind
	Message        string
	Cause          error
	SourceLocation string
	LineNumber     int
}

// DescriptorError reports a generation problem in source at line.
// Pass an empty source when the location is unknown.
func DescriptorError(message string, cause error, source string, line int) *Failure {
	return &Failure{
		Kind:           KindDescriptor,
		Message:        message,
		Cause:          cause,
		SourceLocation: source,
		LineNumber:     line,
	}
}

// FatalError reports that generation could not be attempted.
func FatalError(message string, cause error) *Failure {
	return &Failure{Kind: KindFatal, Message: message, Cause: cause}
}

// HasLocation reports whether the failure names a source file.
func (f *Failure) HasLocation() bool {
	return f.SourceLocation != ""
}

// Error implements the error interface.
func (f *Failure) Error() string {
	msg := f.Message
	if f.HasLocation() {
		msg = fmt.Sprintf("%s (%s:%d)", msg, f.SourceLocation, f.LineNumber)
	}
	if f.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, f.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Cause
}
