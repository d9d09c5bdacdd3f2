package oas3

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/internal/options"
	"github.com/erraggy/apielements/oaserrors"
	"github.com/erraggy/apielements/parser"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger              parser.Logger
	generateMessageBody bool

	// Source identification
	sourceName *string
}

// Result is the outcome of parsing one document.
type Result struct {
	// ParseResult holds the API element, when one could be built, and every
	// annotation produced while parsing. Check HasError before using the value.
	*parser.ParseResult

	// State is the per-parse registry. Its "schemas" table resolves the named
	// types found in the API element.
	State *parser.State

	// Source is the file path, or the name given with WithSourceName
	Source string

	// Title and Version come from the Info Object. They are empty when the
	// document could not be parsed.
	Title   string
	Version string
}

// API returns the API element, or nil when the document could not be parsed.
func (r *Result) API() *element.Element {
	return r.Value()
}

// Schemas returns the lookup table of the parsed component schemas.
func (r *Result) Schemas() element.Table {
	return r.State.Table(categorySchemas)
}

// ParseWithOptions parses an OpenAPI 3 document using functional options.
//
// A Go error is only returned when the input cannot be read or is not valid
// YAML or JSON, or when the options are invalid. Every problem found in the
// document itself is reported as an annotation on the result.
//
// Example:
//
//	result, err := oas3.ParseWithOptions(
//	    oas3.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range result.AllAnnotations() {
//	    fmt.Println(a)
//	}
func ParseWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("oas3: invalid options: %w", err)
	}

	var data []byte
	source := ""
	switch {
	case cfg.filePath != nil:
		source = *cfg.filePath
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: source, Message: "failed to read file", Cause: err}
		}
	case cfg.reader != nil:
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &oaserrors.ParseError{Message: "failed to read data", Cause: err}
		}
	default:
		data = cfg.bytes
	}
	if cfg.sourceName != nil {
		source = *cfg.sourceName
	}

	root, err := element.Load(data, source)
	if err != nil {
		return nil, err
	}

	state := parser.NewState(parser.WithLogger(cfg.logger))
	p := &documentParser{state: state, generateMessageBody: cfg.generateMessageBody}

	cfg.logger.Debug("parsing document", "source", source, "bytes", len(data))
	result := p.parse(root)
	cfg.logger.Debug("parsed document",
		"source", source,
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()),
	)

	return &Result{
		ParseResult: result,
		State:       state,
		Source:      source,
		Title:       p.title,
		Version:     p.version,
	}, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		logger:              parser.NopLogger{},
		generateMessageBody: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("oas3",
		[]string{"WithFilePath", "WithReader", "WithBytes"},
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default nothing is logged.
func WithLogger(l parser.Logger) Option {
	return func(cfg *parseConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithSourceName names the input in source locations and in Result.Source.
// This is most useful with WithReader or WithBytes.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithGenerateMessageBody enables or disables generating JSON message bodies
// from schemas for media types without an example.
// Default: true
func WithGenerateMessageBody(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.generateMessageBody = enabled
		return nil
	}
}
