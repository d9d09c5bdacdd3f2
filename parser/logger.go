package parser

import (
	"log/slog"
)

// Logger receives the engine's diagnostic trace. Annotations are the
// user-facing output of a parse; the logger only explains how they came about.
//
// At debug level a State records component registration, every
// dereference and its outcome, circular references, and objects rejected
// for missing required keys. The oas3 package adds document-level records
// such as the detected OpenAPI version. Attributes are key-value pairs as
// in log/slog:
//
//	state.Logger().Debug("dereferencing component", "ref", "#/components/schemas/Pet", "placeholder", true)
//
// Wrap a *slog.Logger with [NewSlogAdapter], or leave the default
// [NopLogger] in place to log nothing.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards every record. NewState uses it unless WithLogger is given.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter sends engine records to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter over logger, or over slog.Default() when
// logger is nil. The CLI builds one over a text handler for --debug.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With returns an adapter over s's slog.Logger extended with attrs.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
