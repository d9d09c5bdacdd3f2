// Package oaserrors provides structured error types for apielements.
//
// Import path: github.com/erraggy/apielements/oaserrors
//
// The element-tree engine never returns Go errors for document problems;
// those become annotations on a parse result. Go errors only appear at the
// loading and configuration boundary, and as the cause attached to an
// annotation so callers can still use [errors.Is] and [errors.As]:
//
//	for _, ann := range result.Errors() {
//	    if errors.Is(ann.Err, oaserrors.ErrCircularReference) {
//	        // a component refers back to itself
//	    }
//	}
//
// # Error Types
//
//   - [ParseError]: YAML/JSON syntax failures while loading a document
//   - [ReferenceError]: component reference failures, including cycles
//   - [ResourceLimitError]: nesting depth and similar limits
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
package oaserrors
