// Package logger provides structured logging for the example drivers
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelEnv names the environment variable that overrides the log level
const LevelEnv = "ECFIELD_LOG_LEVEL"

// Logger wraps zerolog.Logger
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Output is where logs are written (default: os.Stdout)
	Output io.Writer

	// Pretty enables human-readable console output
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339)
	TimeFormat string

	// CallerEnabled adds file and line number to logs
	CallerEnabled bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:         "info",
		Output:        os.Stdout,
		Pretty:        false,
		TimeFormat:    time.RFC3339,
		CallerEnabled: false,
	}
}

// ConfigFromEnv returns DefaultConfig with the level taken from LevelEnv when set
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if level, ok := os.LookupEnv(LevelEnv); ok && level != "" {
		cfg.Level = strings.ToLower(level)
	}
	return cfg
}

// New creates a new logger with the given configuration
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	zlog := zerolog.New(output).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	if cfg.CallerEnabled {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// With creates a child logger with additional context
func (l *Logger) With() *Context {
	return &Context{zctx: l.zlog.With()}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.zlog.Debug().Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.zlog.Info().Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.zlog.Error().Msg(msg)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string) {
	l.zlog.Fatal().Msg(msg)
}

// Context provides fluent API for adding fields to logs
type Context struct {
	zctx zerolog.Context
}

// Str adds a string field
func (c *Context) Str(key, val string) *Context {
	c.zctx = c.zctx.Str(key, val)
	return c
}

// Uint64 adds an unsigned integer field
func (c *Context) Uint64(key string, val uint64) *Context {
	c.zctx = c.zctx.Uint64(key, val)
	return c
}

// Logger returns the configured logger
func (c *Context) Logger() *Logger {
	return &Logger{zlog: c.zctx.Logger()}
}

// Event represents a log event
type Event struct {
	zevent *zerolog.Event
}

// Str adds a string field to the event
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Stringer adds a field rendered with its String method, such as a field
// element or a point
func (e *Event) Stringer(key string, val fmt.Stringer) *Event {
	e.zevent.Stringer(key, val)
	return e
}

// Uint64 adds an unsigned integer field to the event
func (e *Event) Uint64(key string, val uint64) *Event {
	e.zevent.Uint64(key, val)
	return e
}

// Bool adds a boolean field to the event
func (e *Event) Bool(key string, val bool) *Event {
	e.zevent.Bool(key, val)
	return e
}

// Err adds an error field to the event
func (e *Event) Err(err error) *Event {
	e.zevent.AnErr("error", err)
	return e
}

// Dur adds a duration field to the event
func (e *Event) Dur(key string, val time.Duration) *Event {
	e.zevent.Dur(key, val)
	return e
}

// Msg completes the event with a message
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

// DebugEvent returns a debug event
func (l *Logger) DebugEvent() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// InfoEvent returns an info event
func (l *Logger) InfoEvent() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// ErrorEvent returns an error event
func (l *Logger) ErrorEvent() *Event {
	return &Event{zevent: l.zlog.Error()}
}

// Process-wide logger used by the package-level helpers
var globalLogger = New(DefaultConfig())

// SetGlobalLogger replaces the process-wide logger; nil is ignored
func SetGlobalLogger(logger *Logger) {
	if logger != nil {
		globalLogger = logger
	}
}

// Global returns the process-wide logger
func Global() *Logger {
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string) {
	globalLogger.Info(msg)
}

// Error logs an error message using the global logger
func Error(msg string) {
	globalLogger.Error(msg)
}
