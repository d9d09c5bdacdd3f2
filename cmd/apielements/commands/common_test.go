package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstorePath = "../../../testdata/petstore.yaml"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		valid   []string
		wantErr bool
	}{
		{"valid text", FormatText, nil, false},
		{"valid json", FormatJSON, nil, false},
		{"valid yaml", FormatYAML, nil, false},
		{"invalid format", "xml", nil, true},
		{"empty format", "", nil, true},
		{"restricted allows json", FormatJSON, []string{FormatJSON, FormatYAML}, false},
		{"restricted rejects text", FormatText, []string{FormatJSON, FormatYAML}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.valid...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestOutputAnnotations(t *testing.T) {
	result := parser.Annotations(
		parser.NewWarning("first warning", nil),
		parser.NewError("broken", nil),
	)
	repeated := parser.NewWarning("again", nil)
	repeated.Occurrences = 3
	result.Annotate(repeated)

	var buf bytes.Buffer
	OutputAnnotations(&buf, result)

	assert.Equal(t, "Errors:\n  ✗ broken\n\nWarnings:\n  ⚠ first warning\n  ⚠ again (x3)\n\n", buf.String())

	buf.Reset()
	OutputAnnotations(&buf, parser.NewParseResult(element.NewString("ok")))
	assert.Empty(t, buf.String())
}

func TestOutputStructured(t *testing.T) {
	obj := element.NewObject(element.NewMember("b", element.NewString("x")), element.NewMember("a", nil))

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, obj, FormatJSON))
		assert.JSONEq(t, obj.String(), buf.String())
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})

	t.Run("yaml keeps member order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, obj, FormatYAML))
		out := buf.String()
		assert.Contains(t, out, "element: object")
		assert.NotContains(t, out, "{", "block style is used")
		assert.Less(t, strings.Index(out, "content: b"), strings.Index(out, "content: a"))
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, obj, FormatText))
	})
}

func TestMarshalYAML_QuotesAmbiguousStrings(t *testing.T) {
	data, err := MarshalYAML(map[string]string{"version": "1.0"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"1.0"`)
}

func TestLoadDocument(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		result, err := LoadDocument(petstorePath, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Petstore API", result.Title)
		assert.Equal(t, petstorePath, result.Source)
	})

	t.Run("stdin", func(t *testing.T) {
		doc := "openapi: 3.0.0\ninfo:\n  title: In\n  version: '1'\npaths: {}\n"
		result, err := LoadDocument(StdinFilePath, strings.NewReader(doc), nil)
		require.NoError(t, err)
		assert.Equal(t, "In", result.Title)
		assert.Equal(t, "<stdin>", result.Source)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDocument("does-not-exist.yaml", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing file")
	})

	t.Run("debug logger", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := LoadDocument(petstorePath, nil, NewDebugLogger(&buf))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "parsing document")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})
}
