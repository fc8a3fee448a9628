// Package logger provides a structured, levelled logger built on log/slog.
//
// The base logger is configured from APP_ENV and LOG_LEVEL when the package
// is initialised. Setup can later fan records out to MongoDB as well:
//
//	if err := logger.Setup(); err != nil { ... }
//	defer logger.Close()
//
//	log := logger.Component("generator")
//	log.Info("records generated", "count", 120)
//	// → time=... level=INFO msg="records generated" component=generator count=120
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/casasbr/seedgen/config"
)

var L *slog.Logger

var mongoSink *MongoHandler

func init() {
	L = slog.New(newConsoleHandler(os.Stderr, config.AppEnv(), config.LogLevel()))
	slog.SetDefault(L)
}

// newConsoleHandler picks JSON output for production and text output
// everywhere else. Logs go to stderr so stdout stays clean for summaries.
func newConsoleHandler(w io.Writer, env, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(w, opts) // structured JSON for log aggregators
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// ParseLevel maps a LOG_LEVEL string onto a slog level; unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup rebuilds the console logger from the current config and attaches
// the MongoDB sink when LOG_MONGO_URI is configured.
func Setup() error {
	console := newConsoleHandler(os.Stderr, config.AppEnv(), config.LogLevel())
	L = slog.New(console)
	slog.SetDefault(L)

	uri := config.LogMongoURI()
	if uri == "" {
		return nil
	}

	h, err := NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection())
	if err != nil {
		return err
	}
	mongoSink = h

	L = slog.New(NewMultiHandler(console, h))
	slog.SetDefault(L)
	return nil
}

// Close flushes and disconnects the MongoDB sink, if any.
func Close() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

// Component returns the base logger tagged with a component name.
func Component(name string) *slog.Logger {
	return L.With("component", name)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
