package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the logging interface used across the application. It keeps
// components decoupled from the concrete backend while still exposing
// structured fields.
type Logger interface {
	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)

	// Error logs an error message. The error may be nil.
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message, emitted only when the backend's level
	// allows it.
	Debug(msg string, fields ...Field)

	// Printf logs a formatted message at info level, for components that
	// expect a printf-style sink.
	Printf(format string, v ...interface{})

	// Println logs its arguments at info level, space separated.
	Println(v ...interface{})
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a zerolog-backed Logger writing JSON to w, tagged with
// a component field.
//
// Parameters:
//   - w: destination for log output.
//   - component: value of the "component" field on every event.
//
// Returns:
//   - *ZerologAdapter: the configured logger.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates the standard application logger: console-friendly
// output on stderr at info level.
func NewDefaultLogger() *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	zl := zerolog.New(cw).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	return &ZerologAdapter{logger: zl}
}

// Info implements Logger.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	event := z.logger.Info()
	applyFields(event, fields)
	event.Msg(msg)
}

// Error implements Logger.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	event := z.logger.Error().Err(err)
	applyFields(event, fields)
	event.Msg(msg)
}

// Debug implements Logger.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	event := z.logger.Debug()
	applyFields(event, fields)
	event.Msg(msg)
}

// Printf implements Logger.
func (z *ZerologAdapter) Printf(format string, v ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println implements Logger.
func (z *ZerologAdapter) Println(v ...interface{}) {
	z.logger.Info().Msg(fmt.Sprintln(v...))
}

// applyFields attaches typed fields to a zerolog event.
func applyFields(event *zerolog.Event, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case nil:
			// Err(nil) lands here; keep the key visible.
			event.Interface(f.Key, nil)
		case string:
			event.Str(f.Key, v)
		case int:
			event.Int(f.Key, v)
		case int64:
			event.Int64(f.Key, v)
		case uint64:
			event.Uint64(f.Key, v)
		case float64:
			event.Float64(f.Key, v)
		case bool:
			event.Bool(f.Key, v)
		case error:
			event.AnErr(f.Key, v)
		case time.Duration:
			event.Dur(f.Key, v)
		default:
			event.Interface(f.Key, v)
		}
	}
}

// StdLoggerAdapter adapts the standard library's log.Logger to the Logger
// interface, mainly for tests and small tools that do not want zerolog.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info implements Logger.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error implements Logger.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		s.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	s.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug implements Logger.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf implements Logger.
func (s *StdLoggerAdapter) Printf(format string, v ...interface{}) {
	s.logger.Printf(format, v...)
}

// Println implements Logger.
func (s *StdLoggerAdapter) Println(v ...interface{}) {
	s.logger.Println(v...)
}

// formatFields renders fields as " key=value" pairs for plain-text output.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}
