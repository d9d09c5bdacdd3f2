package parser

import (
	"fmt"

	"github.com/erraggy/apielements/element"
)

// Parser turns one element into a ParseResult.
type Parser func(el *element.Element) *ParseResult

// MemberTransform turns one object member into a ParseResult.
//
// The result value is usually a member element. Any other value element is
// wrapped into a member keyed by the original key. A result without a value
// drops the member from the object being built.
type MemberTransform func(member *element.Element) *ParseResult

// ObjectOption configures ParseObject.
type ObjectOption func(*objectConfig)

type objectConfig struct {
	requiredKeys          []string
	orderedKeys           []string
	warnOnMissingRequired bool
}

// WithRequiredKeys names keys that must be present in the object, both before
// and after its members are transformed.
func WithRequiredKeys(keys ...string) ObjectOption {
	return func(c *objectConfig) {
		c.requiredKeys = append(c.requiredKeys, keys...)
	}
}

// WithOrderedKeys names keys whose members are transformed first, in the
// given order, before any other member.
func WithOrderedKeys(keys ...string) ObjectOption {
	return func(c *objectConfig) {
		c.orderedKeys = append(c.orderedKeys, keys...)
	}
}

// WithWarnOnMissingRequired reports missing required keys as warnings
// instead of errors. The object is still not produced.
func WithWarnOnMissingRequired() ObjectOption {
	return func(c *objectConfig) {
		c.warnOnMissingRequired = true
	}
}

// ParseObject returns a Parser that applies transform to every member of an
// object element and rebuilds the object from the surviving members.
//
// name labels the object in annotation messages, e.g. 'Info Object'.
//
// If any member produces an error annotation the object is discarded and the
// result holds only the error annotations. The discarded warnings are
// forgotten by state, so a later identical warning is reported again. Otherwise the rebuilt object keeps
// the original member order and the result carries every annotation produced
// by the members.
func ParseObject(state *State, name string, transform MemberTransform, opts ...ObjectOption) Parser {
	cfg := &objectConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(el *element.Element) *ParseResult {
		if !el.Is(element.KindObject) {
			return state.Warning(fmt.Sprintf("'%s' is not an object", name), el)
		}

		if missing, ok := cfg.checkRequired(state, name, el, el); !ok {
			return missing
		}

		members := el.Items()
		results := make([]*ParseResult, len(members))

		for _, key := range cfg.orderedKeys {
			for i, member := range members {
				if results[i] == nil && member.Is(element.KindMember) && member.KeyString() == key {
					results[i] = transformMember(transform, member)
				}
			}
		}
		for i, member := range members {
			if results[i] == nil {
				results[i] = transformMember(transform, member)
			}
		}

		combined := NewParseResult()
		object := element.NewObject()
		object.SourceMap = el.SourceMap
		for _, r := range results {
			combined.Annotate(r.AllAnnotations()...)
			object.Append(r.Values()...)
		}

		if combined.HasError() {
			state.forget(combined.Warnings()...)
			return combined.ErrorsOnly()
		}

		if missing, ok := cfg.checkRequired(state, name, object, el); !ok {
			return combined.WithoutValues().Concat(missing)
		}

		return combined.Push(object)
	}
}

// transformMember runs transform and coerces plain values into members.
func transformMember(transform MemberTransform, member *element.Element) *ParseResult {
	r := transform(member)
	if r == nil {
		return NewParseResult()
	}

	out := Annotations(r.AllAnnotations()...)
	for _, v := range r.Values() {
		if !v.Is(element.KindMember) {
			wrapped := element.NewMemberElement(member.Key(), v)
			wrapped.SourceMap = member.SourceMap
			wrapped.TypeAttributes = member.TypeAttributes
			v = wrapped
		}
		out.Push(v)
	}
	return out
}

// checkRequired reports one annotation per required key absent from object
// and whether all of them were present. Annotations are located at source,
// the object as it appeared in the input.
func (c *objectConfig) checkRequired(state *State, name string, object, source *element.Element) (*ParseResult, bool) {
	r := NewParseResult()
	ok := true
	for _, key := range c.requiredKeys {
		if object.HasKey(key) {
			continue
		}
		ok = false
		msg := fmt.Sprintf("'%s' is missing required property '%s'", name, key)
		if c.warnOnMissingRequired {
			r = r.Concat(state.Warning(msg, source))
		} else {
			r.Annotate(NewError(msg, source))
		}
	}
	if !ok {
		state.logger.Debug("object missing required keys", "object", name)
	}
	return r, ok
}
