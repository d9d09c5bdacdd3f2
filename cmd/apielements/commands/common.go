// Package commands provides CLI command handlers for apielements.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/apielements/oas3"
	"github.com/erraggy/apielements/parser"
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format against the formats a
// command accepts and returns an error if invalid.
func ValidateOutputFormat(format string, valid ...string) error {
	if len(valid) == 0 {
		valid = []string{FormatText, FormatJSON, FormatYAML}
	}
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %v", format, valid)
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// NewDebugLogger returns a logger that writes debug records as text to w.
func NewDebugLogger(w io.Writer) parser.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// LoadDocument parses the document at specPath, or stdin when specPath is
// StdinFilePath. A nil logger disables logging.
func LoadDocument(specPath string, stdin io.Reader, logger parser.Logger, opts ...oas3.Option) (*oas3.Result, error) {
	if specPath == StdinFilePath {
		opts = append(opts, oas3.WithReader(stdin), oas3.WithSourceName(FormatSpecPath(specPath)))
	} else {
		opts = append(opts, oas3.WithFilePath(specPath))
	}
	if logger != nil {
		opts = append(opts, oas3.WithLogger(logger))
	}

	result, err := oas3.ParseWithOptions(opts...)
	if err != nil {
		if specPath == StdinFilePath {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return result, nil
}

// OutputAnnotations writes the annotations of result to w grouped by
// severity, errors first. Nothing is written for a clean result.
func OutputAnnotations(w io.Writer, result *parser.ParseResult) {
	groups := []struct {
		severity    parser.Severity
		annotations []*parser.Annotation
	}{
		{parser.SeverityError, result.Errors()},
		{parser.SeverityWarning, result.Warnings()},
	}

	title := cases.Title(language.English)
	for _, g := range groups {
		if len(g.annotations) == 0 {
			continue
		}
		Writef(w, "%s:\n", title.String(g.severity.String()+"s"))
		for _, a := range g.annotations {
			Writef(w, "  %s\n", a)
		}
		Writef(w, "\n")
	}
}

// MarshalJSON encodes v as indented JSON.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling to json: %w", err)
	}
	return data, nil
}

// MarshalYAML encodes v as YAML. The value is encoded to JSON first so that
// types with a custom JSON form, such as elements, keep their member order.
func MarshalYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}
	clearStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles a JSON source leaves on nodes
// so the output reads as block YAML.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

// OutputStructured writes v to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, v any, format string) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = MarshalJSON(v)
	case FormatYAML:
		data, err = MarshalYAML(v)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return err
	}

	Writef(w, "%s\n", data)
	return nil
}
