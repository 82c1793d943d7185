// Package logger provides structured logging using zerolog.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (json, console)
	Format string

	// ServiceName is attached to every entry as "service"
	ServiceName string

	// Environment is attached to every entry as "env" when set
	Environment string

	// EnableCaller adds caller information to log entries
	EnableCaller bool
}

// DefaultConfig returns the configuration used before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "whereto",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.Environment != "" {
		zctx = zctx.Str("env", cfg.Environment)
	}
	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// WithField returns a child logger carrying key=value.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID returns a child logger carrying the request id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithRoute returns a child logger carrying an origin-destination pair.
func (l *Logger) WithRoute(origin, destination string) *Logger {
	return &Logger{Logger: l.With().
		Str("origin", origin).
		Str("destination", destination).
		Logger()}
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// IntoContext stores l in ctx so that FromContext can retrieve it.
func IntoContext(ctx context.Context, l *Logger) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or the global logger.
func FromContext(ctx context.Context) *Logger {
	if zl := zerolog.Ctx(ctx); zl != nil && zl.GetLevel() != zerolog.Disabled {
		return &Logger{Logger: *zl}
	}
	return global()
}

// Global is the process-wide logger. It is initialized by Init or lazily
// with DefaultConfig.
var Global *Logger

// Init sets Global from cfg.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal replaces Global.
func SetGlobal(l *Logger) {
	Global = l
}

func global() *Logger {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global
}

// Info returns an info level event from the global logger.
func Info() *zerolog.Event { return global().Info() }

// Error returns an error level event from the global logger.
func Error() *zerolog.Event { return global().Error() }

// Debug returns a debug level event from the global logger.
func Debug() *zerolog.Event { return global().Debug() }

// Warn returns a warn level event from the global logger.
func Warn() *zerolog.Event { return global().Warn() }

// Fatal returns a fatal level event from the global logger.
func Fatal() *zerolog.Event { return global().Fatal() }
