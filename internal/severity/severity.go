// Package severity provides the severity levels attached to annotations.
//
// Only two levels exist:
//   - SeverityError: fatal to the immediately enclosing object or array
//   - SeverityWarning: attached to the result, parsing continues
package severity

// Severity indicates the severity level of an annotation.
type Severity int

const (
	// SeverityError discards the enclosing structure under construction.
	SeverityError Severity = iota

	// SeverityWarning is reported but never stops parsing.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Symbol returns the glyph used when rendering an annotation of this level.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	default:
		return "?"
	}
}
