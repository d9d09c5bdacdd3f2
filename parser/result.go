package parser

import (
	"fmt"

	"github.com/erraggy/apielements/element"
)

// ParseResult is the universal return type of the engine: zero or more value
// elements (normally at most one) plus the annotations collected while
// producing them. It is a transient carrier and is not meant to be stored.
type ParseResult struct {
	values      []*element.Element
	annotations []*Annotation
}

// NewParseResult returns a result holding values. Nil values are skipped.
func NewParseResult(values ...*element.Element) *ParseResult {
	r := &ParseResult{}
	for _, v := range values {
		if v != nil {
			r.values = append(r.values, v)
		}
	}
	return r
}

// Annotations returns a result holding only annotations. Nil entries are skipped.
func Annotations(annotations ...*Annotation) *ParseResult {
	r := &ParseResult{}
	return r.Annotate(annotations...)
}

// Errorf returns a result holding a single error annotation located at el.
func Errorf(el *element.Element, format string, args ...any) *ParseResult {
	return Annotations(NewError(fmt.Sprintf(format, args...), el))
}

// Annotate appends annotations to r and returns r.
func (r *ParseResult) Annotate(annotations ...*Annotation) *ParseResult {
	for _, a := range annotations {
		if a != nil {
			r.annotations = append(r.annotations, a)
		}
	}
	return r
}

// Push appends values to r and returns r.
func (r *ParseResult) Push(values ...*element.Element) *ParseResult {
	for _, v := range values {
		if v != nil {
			r.values = append(r.values, v)
		}
	}
	return r
}

// Concat returns a new result holding r's values followed by other's values,
// and r's annotations followed by other's annotations.
func (r *ParseResult) Concat(other *ParseResult) *ParseResult {
	out := &ParseResult{}
	if r != nil {
		out.values = append(out.values, r.values...)
		out.annotations = append(out.annotations, r.annotations...)
	}
	if other != nil {
		out.values = append(out.values, other.values...)
		out.annotations = append(out.annotations, other.annotations...)
	}
	return out
}

// Value returns the first value element, or nil.
func (r *ParseResult) Value() *element.Element {
	if r == nil || len(r.values) == 0 {
		return nil
	}
	return r.values[0]
}

// Values returns the value elements in order.
func (r *ParseResult) Values() []*element.Element {
	if r == nil {
		return nil
	}
	return r.values
}

// HasValue reports whether r holds at least one value element.
func (r *ParseResult) HasValue() bool {
	return r != nil && len(r.values) > 0
}

// AllAnnotations returns every annotation in order.
func (r *ParseResult) AllAnnotations() []*Annotation {
	if r == nil {
		return nil
	}
	return r.annotations
}

// Errors returns the error annotations in order.
func (r *ParseResult) Errors() []*Annotation {
	return r.filter(SeverityError)
}

// Warnings returns the warning annotations in order.
func (r *ParseResult) Warnings() []*Annotation {
	return r.filter(SeverityWarning)
}

// HasError reports whether r contains at least one error annotation.
func (r *ParseResult) HasError() bool {
	if r == nil {
		return false
	}
	for _, a := range r.annotations {
		if a.IsError() {
			return true
		}
	}
	return false
}

// IsEmpty reports whether r holds neither values nor annotations.
func (r *ParseResult) IsEmpty() bool {
	return r == nil || (len(r.values) == 0 && len(r.annotations) == 0)
}

// WithoutValues returns a result holding only r's annotations.
func (r *ParseResult) WithoutValues() *ParseResult {
	return Annotations(r.AllAnnotations()...)
}

// ErrorsOnly returns a result holding only r's error annotations.
func (r *ParseResult) ErrorsOnly() *ParseResult {
	return Annotations(r.Errors()...)
}

func (r *ParseResult) filter(sev Severity) []*Annotation {
	if r == nil {
		return nil
	}
	var out []*Annotation
	for _, a := range r.annotations {
		if a.Severity == sev {
			out = append(out, a)
		}
	}
	return out
}

// canContinue is the pipeline continue predicate.
func (r *ParseResult) canContinue() bool {
	return !r.HasError() && r.HasValue()
}
