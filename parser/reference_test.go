package parser

import (
	"testing"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(s string) *element.Element {
	el := element.NewString(s)
	el.SourceMap = []element.SourceLocation{{Line: 9, Column: 7, File: "api.yaml"}}
	return el
}

func TestDereference_Errors(t *testing.T) {
	state := NewState()
	state.RegisterComponents("schemas", "Pet")

	tests := []struct {
		name     string
		ref      *element.Element
		category string
		message  string
	}{
		{"not a string", element.NewNumber(1), "schemas", "'$ref' is not a string"},
		{"remote", ref("other.yaml#/components/schemas/Pet"), "schemas", "'other.yaml#/components/schemas/Pet' is not a local reference"},
		{"not a component", ref("#/paths/~1pets"), "schemas", "'#/paths/~1pets' is not a reference to a component"},
		{"too deep", ref("#/components/schemas/Pet/properties"), "schemas", "'#/components/schemas/Pet/properties' is not a reference to a component"},
		{"category mismatch", ref("#/components/parameters/Pet"), "schemas", "'#/components/parameters/Pet' is not a reference to 'schemas'"},
		{"category not defined", ref("#/components/links/Pet"), "links", "'links' category not defined"},
		{"reference not defined", ref("#/components/schemas/Owner"), "schemas", "'#/components/schemas/Owner' reference not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := state.Dereference(tt.ref, tt.category, false)
			assert.False(t, r.HasValue())
			require.Len(t, r.AllAnnotations(), 1)

			a := r.Errors()[0]
			assert.Equal(t, tt.message, a.Message)
			assert.ErrorIs(t, a, oaserrors.ErrReference)
			assert.NotErrorIs(t, a, oaserrors.ErrCircularReference)
		})
	}
}

func TestDereference_Placeholder(t *testing.T) {
	state := NewState()
	state.RegisterComponents("schemas", "Pet")

	r := state.Dereference(ref("#/components/schemas/Pet"), "schemas", true)
	require.True(t, r.HasValue())
	assert.Empty(t, r.AllAnnotations())
	assert.Equal(t, element.Kind("Pet"), r.Value().Kind)
	assert.True(t, r.Value().Kind.IsNamed())
	assert.Equal(t, 9, r.Value().SourceMap[0].Line)
}

func TestDereference_EscapedID(t *testing.T) {
	state := NewState()
	state.RegisterComponents("schemas", "a/b~c")

	r := state.Dereference(ref("#/components/schemas/a~1b~0c"), "schemas", true)
	require.True(t, r.HasValue())
	assert.Equal(t, element.Kind("a/b~c"), r.Value().Kind)
}

func TestDereference_Unwraps(t *testing.T) {
	state := NewState()
	state.RegisterComponents("schemas", "Alias", "Pet")

	pet := element.NewObject()
	pet.ID = "Pet"
	state.Define("schemas", "Pet", pet)

	alias := element.NewNamed("Pet")
	alias.ID = "Alias"
	state.Define("schemas", "Alias", alias)

	r := state.Dereference(ref("#/components/schemas/Alias"), "schemas", false)
	require.True(t, r.HasValue())
	assert.Same(t, pet, r.Value())

	// A named kind outside the registry ends the unwrapping
	external := element.NewNamed("Unknown")
	state.Define("schemas", "External", external)
	r = state.Dereference(ref("#/components/schemas/External"), "schemas", false)
	assert.Same(t, external, r.Value())
}

func TestDereference_Cycles(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		start   string
		message string
		chain   []string
	}{
		{
			name:    "self",
			aliases: map[string]string{"A": "A"},
			start:   "A",
			message: "'#/components/schemas/A' contains a circular reference: A -> A",
			chain:   []string{"A", "A"},
		},
		{
			name:    "two",
			aliases: map[string]string{"A": "B", "B": "A"},
			start:   "A",
			message: "'#/components/schemas/A' contains a circular reference: A -> B -> A",
			chain:   []string{"A", "B", "A"},
		},
		{
			name:    "tail",
			aliases: map[string]string{"A": "B", "B": "C", "C": "B"},
			start:   "A",
			message: "'#/components/schemas/A' contains a circular reference: A -> B -> C -> B",
			chain:   []string{"A", "B", "C", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			for id, target := range tt.aliases {
				state.Define("schemas", id, element.NewNamed(target))
			}

			r := state.Dereference(ref("#/components/schemas/"+tt.start), "schemas", false)
			assert.False(t, r.HasValue())
			require.Len(t, r.AllAnnotations(), 1)

			a := r.Errors()[0]
			assert.Equal(t, tt.message, a.Message)
			assert.Equal(t, "api.yaml:9:7", a.Location())

			var refErr *oaserrors.ReferenceError
			require.ErrorAs(t, a, &refErr)
			assert.True(t, refErr.IsCircular)
			assert.Equal(t, tt.chain, refErr.Chain)
			assert.ErrorIs(t, a, oaserrors.ErrCircularReference)
		})
	}
}

func TestDereference_PlaceholderSkipsCycleCheck(t *testing.T) {
	state := NewState()
	state.Define("schemas", "A", element.NewNamed("A"))

	r := state.Dereference(ref("#/components/schemas/A"), "schemas", true)
	require.True(t, r.HasValue())
	assert.Equal(t, element.Kind("A"), r.Value().Kind)
}
