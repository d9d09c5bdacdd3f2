package parser

import (
	"fmt"
	"slices"
	"testing"

	"github.com/erraggy/apielements/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func object(pairs ...any) *element.Element {
	obj := element.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		obj.Append(element.NewMember(pairs[i].(string), pairs[i+1].(*element.Element)))
	}
	return obj
}

func messages(annotations []*Annotation) []string {
	out := make([]string, 0, len(annotations))
	for _, a := range annotations {
		out = append(out, a.Message)
	}
	return out
}

func TestParseObject_NotAnObject(t *testing.T) {
	state := NewState()
	r := ParseObject(state, "Info Object", Keep)(element.NewString("nope"))

	assert.False(t, r.HasValue())
	assert.False(t, r.HasError())
	assert.Equal(t, []string{"'Info Object' is not an object"}, messages(r.Warnings()))
}

func TestParseObject_KeepsMemberOrder(t *testing.T) {
	state := NewState()
	r := ParseObject(state, "Thing", Keep)(object(
		"b", element.NewString("1"),
		"a", element.NewString("2"),
		"c", element.NewString("3"),
	))

	require.True(t, r.HasValue())
	assert.Equal(t, []string{"b", "a", "c"}, r.Value().Keys())
}

func TestParseObject_RequiredKeys(t *testing.T) {
	t.Run("missing keys are errors by default", func(t *testing.T) {
		called := false
		transform := func(m *element.Element) *ParseResult { called = true; return Keep(m) }

		r := ParseObject(NewState(), "Info Object", transform, WithRequiredKeys("a", "b"))(object("c", element.NewString("x")))

		assert.False(t, called, "transformation is skipped when required keys are missing")
		assert.False(t, r.HasValue())
		assert.Equal(t, []string{
			"'Info Object' is missing required property 'a'",
			"'Info Object' is missing required property 'b'",
		}, messages(r.Errors()))
	})

	t.Run("warn policy", func(t *testing.T) {
		r := ParseObject(NewState(), "Info Object", Keep, WithRequiredKeys("a"), WithWarnOnMissingRequired())(object())

		assert.False(t, r.HasValue())
		assert.Empty(t, r.Errors())
		assert.Equal(t, []string{"'Info Object' is missing required property 'a'"}, messages(r.Warnings()))
	})

	t.Run("member without value fails the post check", func(t *testing.T) {
		dropA := func(m *element.Element) *ParseResult {
			if m.KeyString() == "a" {
				return NewState().Warning("'a' could not be resolved", m)
			}
			return Keep(m)
		}
		r := ParseObject(NewState(), "Thing", dropA, WithRequiredKeys("a"))(object(
			"a", element.NewString("1"),
			"b", element.NewString("2"),
		))

		assert.False(t, r.HasValue())
		assert.Equal(t, []string{"'a' could not be resolved"}, messages(r.Warnings()))
		assert.Equal(t, []string{"'Thing' is missing required property 'a'"}, messages(r.Errors()))
	})

	t.Run("all present", func(t *testing.T) {
		r := ParseObject(NewState(), "Thing", Keep, WithRequiredKeys("a"))(object("a", element.NewString("1")))
		assert.True(t, r.HasValue())
		assert.Empty(t, r.AllAnnotations())
	})
}

func TestParseObject_Poisoning(t *testing.T) {
	transform := func(m *element.Element) *ParseResult {
		switch m.KeyString() {
		case "bad":
			return Annotations(NewError("bad member", m))
		case "odd":
			return Keep(m).Annotate(NewWarning("odd member", m))
		}
		return Keep(m)
	}

	r := ParseObject(NewState(), "Thing", transform)(object(
		"ok", element.NewString("1"),
		"odd", element.NewString("2"),
		"bad", element.NewString("3"),
	))

	assert.False(t, r.HasValue())
	assert.Equal(t, []string{"bad member"}, messages(r.AllAnnotations()), "only errors survive a poisoned object")
}

func TestParseObject_PoisonedWarningsAreReportedAgain(t *testing.T) {
	state := NewState()
	transform := func(m *element.Element) *ParseResult {
		switch m.KeyString() {
		case "bad":
			return Annotations(NewError("bad member", m))
		case "x":
			return Keep(m).Concat(state.Warning("'Thing' 'x' is deprecated", m))
		}
		return Keep(m)
	}
	parseThings := ParseArray(state, "Things", ParseObject(state, "Thing", transform))

	r := parseThings(element.NewArray(
		object("bad", element.NewString("1"), "x", element.NewString("2")),
		object("x", element.NewString("3")),
		object("x", element.NewString("4")),
	))

	assert.Equal(t, []string{"bad member"}, messages(r.Errors()))
	warnings := r.Warnings()
	require.Len(t, warnings, 1, "the warning of the surviving object is not swallowed")
	assert.Equal(t, "'Thing' 'x' is deprecated", warnings[0].Message)
	assert.Equal(t, 2, warnings[0].Occurrences)
}

func TestParseObject_CarriesAnnotations(t *testing.T) {
	transform := func(m *element.Element) *ParseResult {
		return Keep(m).Annotate(NewWarning("saw "+m.KeyString(), m))
	}
	r := ParseObject(NewState(), "Thing", transform)(object(
		"a", element.NewString("1"),
		"b", element.NewString("2"),
	))
	require.True(t, r.HasValue())
	assert.Equal(t, []string{"saw a", "saw b"}, messages(r.Warnings()))
}

func TestParseObject_CoercesPlainValues(t *testing.T) {
	upper := func(m *element.Element) *ParseResult {
		s, _ := m.Value().StringValue()
		return NewParseResult(element.NewString(s + s))
	}
	input := object("a", element.NewString("x"))
	input.Items()[0].SourceMap = []element.SourceLocation{{Line: 2, Column: 1}}

	r := ParseObject(NewState(), "Thing", upper)(input)
	require.True(t, r.HasValue())

	member := r.Value().GetMember("a")
	require.NotNil(t, member)
	s, _ := member.Value().StringValue()
	assert.Equal(t, "xx", s)
	assert.Equal(t, input.Items()[0].SourceMap, member.SourceMap)
}

func TestParseObject_OrderedKeys(t *testing.T) {
	var order []string
	version := ""
	transform := func(m *element.Element) *ParseResult {
		order = append(order, m.KeyString())
		if m.KeyString() == "openapi" {
			version, _ = m.Value().StringValue()
			return Keep(m)
		}
		return NewParseResult(element.NewMember(m.KeyString(), element.NewString(version)))
	}

	r := ParseObject(NewState(), "OpenAPI Object", transform, WithOrderedKeys("openapi"))(object(
		"info", element.NewString(""),
		"openapi", element.NewString("3.0.3"),
		"paths", element.NewString(""),
	))

	assert.Equal(t, []string{"openapi", "info", "paths"}, order)
	require.True(t, r.HasValue())
	assert.Equal(t, []string{"info", "openapi", "paths"}, r.Value().Keys(), "results keep the original order")
	seen, _ := r.Value().Get("info").StringValue()
	assert.Equal(t, "3.0.3", seen)
}

func TestParseObject_RequiredKeysProperty(t *testing.T) {
	// Required keys missing from the input yield exactly one annotation each,
	// naming the object and the key.
	rapid.Check(t, func(t *rapid.T) {
		keys := []string{"a", "b", "c", "d"}
		present := rapid.SliceOfDistinct(rapid.SampledFrom(keys), func(s string) string { return s }).Draw(t, "present")
		required := rapid.SliceOfDistinct(rapid.SampledFrom(keys), func(s string) string { return s }).Draw(t, "required")

		obj := element.NewObject()
		for _, k := range present {
			obj.Append(element.NewMember(k, element.NewString(k)))
		}
		r := ParseObject(NewState(), "Thing", Keep, WithRequiredKeys(required...))(obj)

		missing := []string{}
		for _, k := range required {
			if !obj.HasKey(k) {
				missing = append(missing, fmt.Sprintf("'Thing' is missing required property '%s'", k))
			}
		}
		if got := messages(r.Errors()); !slices.Equal(got, missing) {
			t.Fatalf("errors %v, want %v", got, missing)
		}
		if r.HasValue() != (len(missing) == 0) {
			t.Fatalf("HasValue=%v with %d missing keys", r.HasValue(), len(missing))
		}
	})
}

// Whatever mix of member outcomes, a result with an error never holds a value.
func TestParseObject_PoisoningProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outcomes := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "outcomes")

		obj := element.NewObject()
		for i := range outcomes {
			obj.Append(element.NewMember(fmt.Sprintf("k%d", i), element.NewNumber(float64(i))))
		}
		transform := func(m *element.Element) *ParseResult {
			i, _ := m.Value().NumberValue()
			switch outcomes[int(i)] {
			case 0:
				return Keep(m)
			case 1:
				return Keep(m).Annotate(NewWarning("warn", m))
			case 2:
				return Annotations(NewError("error", m))
			default:
				return NewParseResult()
			}
		}

		r := ParseObject(NewState(), "Thing", transform)(obj)
		if r.HasError() && r.HasValue() {
			t.Fatalf("poisoned object still has a value")
		}
		if r.HasError() && len(r.Warnings()) > 0 {
			t.Fatalf("poisoned object kept warnings")
		}
		if !r.HasError() && !r.HasValue() {
			t.Fatalf("clean object lost its value")
		}
	})
}
