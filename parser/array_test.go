package parser

import (
	"testing"

	"github.com/erraggy/apielements/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// onlyStrings keeps string items, drops numbers with a warning and rejects
// booleans with an error.
func onlyStrings(el *element.Element) *ParseResult {
	switch el.Kind {
	case element.KindString:
		return NewParseResult(el)
	case element.KindNumber:
		return Annotations(NewWarning("number dropped", el))
	}
	return Annotations(NewError("unexpected item", el))
}

func TestParseArray(t *testing.T) {
	t.Run("not an array", func(t *testing.T) {
		r := ParseArray(NewState(), "Tags", onlyStrings)(element.NewObject())
		assert.False(t, r.HasValue())
		assert.Equal(t, []string{"'Tags' is not an array"}, messages(r.Warnings()))
	})

	t.Run("valueless items are dropped", func(t *testing.T) {
		r := ParseArray(NewState(), "Tags", onlyStrings)(element.NewArray(
			element.NewString("a"),
			element.NewNumber(1),
			element.NewString("b"),
		))
		require.True(t, r.HasValue())
		assert.Equal(t, 2, r.Value().Len())
		assert.Equal(t, []string{"number dropped"}, messages(r.Warnings()))
	})

	t.Run("error poisons the array", func(t *testing.T) {
		r := ParseArray(NewState(), "Tags", onlyStrings)(element.NewArray(
			element.NewString("a"),
			element.NewNumber(1),
			element.NewBoolean(true),
		))
		assert.False(t, r.HasValue())
		assert.Equal(t, []string{"number dropped", "unexpected item"}, messages(r.AllAnnotations()))
	})

	t.Run("empty array", func(t *testing.T) {
		r := ParseArray(NewState(), "Tags", onlyStrings)(element.NewArray())
		require.True(t, r.HasValue())
		assert.True(t, r.Value().IsEmpty())
	})
}

func TestParseArray_PoisoningProperty(t *testing.T) {
	kinds := []*element.Element{element.NewString("s"), element.NewNumber(1), element.NewBoolean(true)}
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.SampledFrom(kinds)).Draw(t, "items")
		r := ParseArray(NewState(), "Tags", onlyStrings)(element.NewArray(items...))
		if r.HasError() == r.HasValue() {
			t.Fatalf("HasError=%v HasValue=%v", r.HasError(), r.HasValue())
		}
	})
}
