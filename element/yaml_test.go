package element

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/erraggy/apielements/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: Pets
  version: 1
flags: [true, false]
ratio: 0.5
nothing: null
released: 2020-01-01
`
	root, err := LoadString(doc, "api.yaml")
	require.NoError(t, err)
	require.True(t, root.Is(KindObject))

	assert.Equal(t, []string{"openapi", "info", "flags", "ratio", "nothing", "released"}, root.Keys())

	openapi, ok := root.Get("openapi").StringValue()
	require.True(t, ok, "3.0.3 is not a valid float and stays a string")
	assert.Equal(t, "3.0.3", openapi)

	version, ok := root.Get("info").Get("version").NumberValue()
	require.True(t, ok)
	assert.InDelta(t, 1, version, 0)

	flags := root.Get("flags").Items()
	require.Len(t, flags, 2)
	b, _ := flags[1].BoolValue()
	assert.False(t, b)

	ratio, _ := root.Get("ratio").NumberValue()
	assert.InDelta(t, 0.5, ratio, 0)

	assert.True(t, root.Get("nothing").Is(KindNull))

	released, ok := root.Get("released").StringValue()
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", released)
}

func TestLoad_SourceLocations(t *testing.T) {
	doc := "info:\n  title: Pets\n"
	root, err := LoadString(doc, "api.yaml")
	require.NoError(t, err)

	title := root.Get("info").Get("title")
	loc, ok := title.Location()
	require.True(t, ok)
	assert.Equal(t, SourceLocation{Line: 2, Column: 10, File: "api.yaml"}, loc)
	assert.Equal(t, "api.yaml:2:10", loc.String())

	member := root.Get("info").GetMember("title")
	memberLoc, ok := member.Location()
	require.True(t, ok)
	assert.Equal(t, 3, memberLoc.Column, "members are located at their key")
}

func TestLoad_JSON(t *testing.T) {
	root, err := LoadString(`{"b": 1, "a": [1, "two", null]}`, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, root.Keys(), "JSON key order is preserved")
	assert.Equal(t, 3, root.Get("a").Len())
}

func TestLoad_Aliases(t *testing.T) {
	doc := `base: &base
  type: string
copy: *base
`
	root, err := LoadString(doc, "")
	require.NoError(t, err)
	typ, ok := root.Get("copy").Get("type").StringValue()
	require.True(t, ok)
	assert.Equal(t, "string", typ)
}

// nestedAliases builds a document of levels anchored sequences, each holding
// fanOut aliases of the previous one.
func nestedAliases(levels, fanOut int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [" + strings.TrimSuffix(strings.Repeat("x, ", fanOut), ", ") + "]\n")
	for i := 1; i <= levels; i++ {
		prev := fmt.Sprintf("*l%d, ", i-1)
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(prev, fanOut), ", "))
	}
	return b.String()
}

func TestLoad_AliasExpansionLimit(t *testing.T) {
	doc := nestedAliases(7, 10)
	require.Less(t, len(doc), 1024)

	_, err := LoadString(doc, "bomb.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

	var limitErr *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "alias_expansion", limitErr.ResourceType)
	assert.Greater(t, limitErr.Actual, limitErr.Limit)
}

func TestLoad_ModerateAliasing(t *testing.T) {
	t.Run("small expansion", func(t *testing.T) {
		root, err := LoadString(nestedAliases(2, 5), "")
		require.NoError(t, err)
		assert.Equal(t, 5, root.Get("l2").Len())
		assert.Equal(t, 5, root.Get("l2").Items()[0].Len())
	})

	t.Run("many shared schemas", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("base: &s {type: string}\nproperties:\n")
		for i := 0; i < 400; i++ {
			fmt.Fprintf(&b, "  p%d: *s\n", i)
		}
		root, err := LoadString(b.String(), "")
		require.NoError(t, err)
		assert.Equal(t, 400, root.Get("properties").Len())
	})
}

func TestAllowedAliasRatio(t *testing.T) {
	assert.InDelta(t, 0.99, allowedAliasRatio(1000), 1e-9)
	assert.InDelta(t, 0.99, allowedAliasRatio(400_000), 1e-9)
	assert.InDelta(t, 0.545, allowedAliasRatio(2_200_000), 1e-9)
	assert.InDelta(t, 0.10, allowedAliasRatio(4_000_000), 1e-9)
	assert.InDelta(t, 0.10, allowedAliasRatio(10_000_000), 1e-9)
}

func TestLoad_NonStringKeys(t *testing.T) {
	root, err := LoadString("200: ok\ntrue: yes\n", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"200", "true"}, root.Keys())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"syntax error", "a: [1, 2", oaserrors.ErrParse},
		{"empty document", "", oaserrors.ErrParse},
		{"too deep", strings.Repeat("[", MaxDepth+2) + strings.Repeat("]", MaxDepth+2), oaserrors.ErrResourceLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.input, "bad.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSourceLocationString(t *testing.T) {
	assert.Equal(t, "<unknown>", SourceLocation{}.String())
	assert.Equal(t, "a.yaml", SourceLocation{File: "a.yaml"}.String())
	assert.Equal(t, "3:4", SourceLocation{Line: 3, Column: 4}.String())

	_, ok := (&Element{}).Location()
	assert.False(t, ok)

	e := NewString("x").WithSourceMap(&Element{SourceMap: []SourceLocation{{Line: 7, Column: 1}}})
	loc, ok := e.Location()
	require.True(t, ok)
	assert.Equal(t, 7, loc.Line)
}
