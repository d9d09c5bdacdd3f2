package parser

import (
	"testing"

	"github.com/erraggy/apielements/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		name      string
		transform func(*State) MemberTransform
		value     *element.Element
		wantValue bool
		wantError bool
		message   string
	}{
		{"string ok", func(s *State) MemberTransform { return ParseString(s, "Info Object", true) }, element.NewString("x"), true, false, ""},
		{"string required", func(s *State) MemberTransform { return ParseString(s, "Info Object", true) }, element.NewNumber(1), false, true, "'Info Object' 'title' is not a string"},
		{"string optional", func(s *State) MemberTransform { return ParseString(s, "Info Object", false) }, element.NewNumber(1), false, false, "'Info Object' 'title' is not a string"},
		{"valueless string", func(s *State) MemberTransform { return ParseString(s, "Info Object", false) }, element.New(element.KindString), false, false, "'Info Object' 'title' is not a string"},
		{"boolean ok", func(s *State) MemberTransform { return ParseBoolean(s, "Info Object", false) }, element.NewBoolean(false), true, false, ""},
		{"boolean wrong", func(s *State) MemberTransform { return ParseBoolean(s, "Info Object", false) }, element.NewString("no"), false, false, "'Info Object' 'title' is not a boolean"},
		{"number ok", func(s *State) MemberTransform { return ParseNumber(s, "Info Object", true) }, element.NewNumber(0), true, false, ""},
		{"number wrong", func(s *State) MemberTransform { return ParseNumber(s, "Info Object", true) }, element.NewNull(), false, true, "'Info Object' 'title' is not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.transform(NewState())(element.NewMember("title", tt.value))
			assert.Equal(t, tt.wantValue, r.HasValue())
			assert.Equal(t, tt.wantError, r.HasError())
			if tt.message != "" {
				require.Len(t, r.AllAnnotations(), 1)
				assert.Equal(t, tt.message, r.AllAnnotations()[0].Message)
			}
		})
	}
}

func TestByKey(t *testing.T) {
	state := NewState()
	transform := ByKey(map[string]MemberTransform{"title": Keep}, UnsupportedKey(state, "Info Object"))

	assert.True(t, transform(element.NewMember("title", element.NewString("x"))).HasValue())
	assert.True(t, transform(element.NewMember("x-internal", element.NewString("x"))).IsEmpty())
	assert.True(t, IsExtension(element.NewMember("x-internal", nil)))
	assert.False(t, IsExtension(element.NewMember("title", nil)))

	r := transform(element.NewMember("color", element.NewString("red")))
	assert.False(t, r.HasValue())
	assert.Equal(t, []string{"'Info Object' contains unsupported key 'color'"}, messages(r.Warnings()))

	assert.True(t, Ignore(element.NewMember("a", nil)).IsEmpty())
}
