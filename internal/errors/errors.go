// Package errors defines the diagnostic error types shared by the resolver
// and its collaborators.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code represents the type of resolution error that occurred
type Code int

const (
	CodeUnknown Code = iota
	CodeDependency
	CodeMalformedURI
	CodeFixture
	CodeWorkspace
)

// String returns the string representation of the error code
func (c Code) String() string {
	switch c {
	case CodeDependency:
		return "DependencyError"
	case CodeMalformedURI:
		return "MalformedURIError"
	case CodeFixture:
		return "FixtureError"
	case CodeWorkspace:
		return "WorkspaceError"
	default:
		return "UnknownError"
	}
}

// SourceLocation represents where an error occurred in source code
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// IsEmpty returns true if the location has no useful information
func (s SourceLocation) IsEmpty() bool { return s.File == "" }

// String returns a formatted representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	if s.Line == 0 {
		return s.File
	}
	if s.Column == 0 {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// ResolveError is a diagnostic error with a code, an optional source
// location, an optional cause and optional suggestions for fixing it.
type ResolveError struct {
	Code        Code
	Message     string
	Loc         SourceLocation
	Cause       error
	Suggestions []string
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	if !e.Loc.IsEmpty() {
		b.WriteString(" at ")
		b.WriteString(e.Loc.String())
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any
func (e *ResolveError) Unwrap() error { return e.Cause }

// WithLocation returns a copy of the error carrying the given location
func (e *ResolveError) WithLocation(loc SourceLocation) *ResolveError {
	clone := *e
	clone.Loc = loc
	return &clone
}

// WithSuggestions returns a copy of the error carrying fix suggestions
func (e *ResolveError) WithSuggestions(suggestions ...string) *ResolveError {
	clone := *e
	clone.Suggestions = append(clone.Suggestions, suggestions...)
	return &clone
}

// New creates a ResolveError with the given code and formatted message
func New(code Code, format string, args ...interface{}) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a ResolveError with the given code and cause
func Wrap(code Code, cause error, format string, args ...interface{}) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err is (or wraps) a ResolveError with the given code
func IsCode(err error, code Code) bool {
	var re *ResolveError
	if stderrors.As(err, &re) {
		return re.Code == code
	}
	return false
}
