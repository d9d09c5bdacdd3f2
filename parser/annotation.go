package parser

import (
	"fmt"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/internal/severity"
)

// Severity re-exports the annotation severity levels.
type Severity = severity.Severity

const (
	// SeverityError discards the immediately enclosing object or array.
	SeverityError = severity.SeverityError
	// SeverityWarning is attached to the result while parsing continues.
	SeverityWarning = severity.SeverityWarning
)

// Annotation is a single diagnostic produced while parsing.
type Annotation struct {
	// Message is a human-readable description of the problem
	Message string
	// Severity indicates whether the problem poisons the enclosing structure
	Severity Severity
	// SourceMap locates the offending element in the source document
	SourceMap []element.SourceLocation
	// Err is the structured cause, if any (e.g. *oaserrors.ReferenceError)
	Err error
	// Occurrences counts how many times an identical warning was raised
	// during one parse. It is 1 for every freshly created annotation.
	Occurrences int
}

// NewError creates an error annotation located at el. Errors are never
// deduplicated.
func NewError(message string, el *element.Element) *Annotation {
	return newAnnotation(message, SeverityError, el)
}

// NewWarning creates a warning annotation located at el without consulting
// any deduplication table. Most callers want State.Warning instead.
func NewWarning(message string, el *element.Element) *Annotation {
	return newAnnotation(message, SeverityWarning, el)
}

func newAnnotation(message string, sev Severity, el *element.Element) *Annotation {
	a := &Annotation{Message: message, Severity: sev, Occurrences: 1}
	if el != nil && len(el.SourceMap) > 0 {
		a.SourceMap = append([]element.SourceLocation(nil), el.SourceMap...)
	}
	return a
}

// WithErr attaches a structured cause and returns a.
func (a *Annotation) WithErr(err error) *Annotation {
	a.Err = err
	return a
}

// IsError reports whether a has error severity.
func (a *Annotation) IsError() bool {
	return a.Severity == SeverityError
}

// IsWarning reports whether a has warning severity.
func (a *Annotation) IsWarning() bool {
	return a.Severity == SeverityWarning
}

// Location returns the source location in IDE-friendly format, or an empty
// string when unknown.
func (a *Annotation) Location() string {
	for _, loc := range a.SourceMap {
		if loc.IsKnown() {
			return loc.String()
		}
	}
	return ""
}

// HasLocation returns true if this annotation has source location information.
func (a *Annotation) HasLocation() bool {
	return a.Location() != ""
}

// String returns a formatted representation of the annotation:
// "✗ 12:3: message" for errors, "⚠ message (x3)" for a repeated warning.
func (a *Annotation) String() string {
	result := a.Severity.Symbol()
	if loc := a.Location(); loc != "" {
		result += " " + loc + ":"
	}
	result += " " + a.Message
	if a.Occurrences > 1 {
		result += fmt.Sprintf(" (x%d)", a.Occurrences)
	}
	return result
}

// Error lets an annotation be returned or wrapped as a Go error.
func (a *Annotation) Error() string {
	return a.Message
}

// Unwrap returns the structured cause.
func (a *Annotation) Unwrap() error {
	return a.Err
}
