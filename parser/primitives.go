package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/apielements/element"
)

// ParseString returns a MemberTransform that accepts a member whose value is
// a string. Any other value is reported as an error when required is true and
// as a warning otherwise, and the member is dropped.
func ParseString(state *State, name string, required bool) MemberTransform {
	return parsePrimitive(state, name, element.KindString, required)
}

// ParseBoolean is ParseString for boolean values.
func ParseBoolean(state *State, name string, required bool) MemberTransform {
	return parsePrimitive(state, name, element.KindBoolean, required)
}

// ParseNumber is ParseString for number values.
func ParseNumber(state *State, name string, required bool) MemberTransform {
	return parsePrimitive(state, name, element.KindNumber, required)
}

func parsePrimitive(state *State, name string, kind element.Kind, required bool) MemberTransform {
	return func(member *element.Element) *ParseResult {
		value := member.Value()
		if value.Is(kind) && value.HasContent() {
			return NewParseResult(member)
		}

		msg := fmt.Sprintf("'%s' '%s' is not a %s", name, member.KeyString(), kind)
		if required {
			return Annotations(NewError(msg, locate(value, member)))
		}
		return state.Warning(msg, locate(value, member))
	}
}

// IsExtension reports whether member is a specification extension, that is
// its key starts with "x-".
func IsExtension(member *element.Element) bool {
	return strings.HasPrefix(member.KeyString(), "x-")
}

// UnsupportedKey returns a MemberTransform that drops the member with a
// warning naming the unsupported key.
func UnsupportedKey(state *State, name string) MemberTransform {
	return func(member *element.Element) *ParseResult {
		return state.Warning(fmt.Sprintf("'%s' contains unsupported key '%s'", name, member.KeyString()), locate(member.Key(), member))
	}
}

// Ignore drops the member silently.
func Ignore(*element.Element) *ParseResult {
	return NewParseResult()
}

// Keep passes the member through unchanged.
func Keep(member *element.Element) *ParseResult {
	return NewParseResult(member)
}

// ByKey returns a MemberTransform that dispatches on the member key.
// Extensions are ignored; keys without a handler go to fallback.
func ByKey(handlers map[string]MemberTransform, fallback MemberTransform) MemberTransform {
	return func(member *element.Element) *ParseResult {
		if h, ok := handlers[member.KeyString()]; ok {
			return h(member)
		}
		if IsExtension(member) {
			return NewParseResult()
		}
		return fallback(member)
	}
}

// locate returns el when it carries a source location and fallback otherwise.
func locate(el, fallback *element.Element) *element.Element {
	if el != nil && len(el.SourceMap) > 0 {
		return el
	}
	return fallback
}
