package element

import "fmt"

// SourceLocation represents a position in a source document.
// Line and Column are 1-based (matching editor conventions).
// A zero Line value indicates the location is unknown.
type SourceLocation struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
	// File is the source file path (empty for the main document)
	File string
}

// IsKnown returns true if this location has valid line information.
func (s SourceLocation) IsKnown() bool {
	return s.Line > 0
}

// String returns a human-readable location string.
// Format: "file:line:column" or "line:column" if no file, or "<unknown>" if not known.
func (s SourceLocation) String() string {
	if !s.IsKnown() {
		if s.File != "" {
			return s.File
		}
		return "<unknown>"
	}
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Location returns the first known source location of e, if any.
func (e *Element) Location() (SourceLocation, bool) {
	if e == nil {
		return SourceLocation{}, false
	}
	for _, loc := range e.SourceMap {
		if loc.IsKnown() {
			return loc, true
		}
	}
	return SourceLocation{}, false
}

// WithSourceMap sets the source map of e from other and returns e.
// It is a no-op when other carries no source map.
func (e *Element) WithSourceMap(other *Element) *Element {
	if e == nil || other == nil || len(other.SourceMap) == 0 {
		return e
	}
	e.SourceMap = append([]SourceLocation(nil), other.SourceMap...)
	return e
}
