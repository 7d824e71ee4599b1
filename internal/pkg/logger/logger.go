// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	// Context keys for logging
	ContextKeySessionID ContextKey = "session_id"
	ContextKeyAction    ContextKey = "action"
	ContextKeyDataFile  ContextKey = "data_file"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string
	Format         string // json, text
	Output         string // stdout, stderr, file:<path>
	AddSource      bool
	Color          bool
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// Logger wraps slog.Logger with the writer it owns
type Logger struct {
	*slog.Logger
	config *LogConfig
	closer io.Closer
}

// SetupLogger initializes the logger and makes it the slog default. The
// returned logger is always usable; see NewLogger for the error case.
func SetupLogger(config *LogConfig) (*Logger, error) {
	logger, err := NewLogger(config)
	slog.SetDefault(logger.Logger)
	return logger, err
}

// NewLogger creates a logger writing to the configured output. If the
// output cannot be opened the logger discards every record and the error is
// returned alongside it.
func NewLogger(config *LogConfig) (*Logger, error) {
	if config == nil {
		config = &LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		}
	}

	writer, closer, err := getWriter(config.Output)
	return newLogger(config, writer, closer), err
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(config *LogConfig, w io.Writer) *Logger {
	return newLogger(config, w, nil)
}

func newLogger(config *LogConfig, w io.Writer, closer io.Closer) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(config, groups, a)
		},
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = NewPrettyTextHandler(w, opts, config.Color)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	// Wrap with context handler for automatic context extraction
	handler = NewContextHandler(handler)

	attrs := []slog.Attr{}
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("service", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return &Logger{
		Logger: slog.New(handler),
		config: config,
		closer: closer,
	}
}

// Close releases the log file, if the logger opened one
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NewSessionContext tags ctx with a fresh session id
func NewSessionContext(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, ContextKeySessionID, id), id
}

// WithAction tags ctx with the form action being run
func WithAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, ContextKeyAction, action)
}

// WithDataFile tags ctx with the data file in use
func WithDataFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ContextKeyDataFile, path)
}

// Helper functions

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getWriter(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr", "":
		return os.Stderr, nil, nil
	case "discard", "none":
		return io.Discard, nil, nil
	}

	filename, ok := strings.CutPrefix(output, "file:")
	if !ok {
		return io.Discard, nil, fmt.Errorf("unknown log output %q", output)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return io.Discard, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, file, nil
}

func defaultContextKeys() []ContextKey {
	return []ContextKey{
		ContextKeySessionID,
		ContextKeyAction,
		ContextKeyDataFile,
	}
}

func extractContextAttrs(ctx context.Context, keys []ContextKey) []slog.Attr {
	var attrs []slog.Attr

	for _, key := range keys {
		if val := ctx.Value(key); val != nil {
			keyStr := string(key)
			switch v := val.(type) {
			case string:
				if v != "" {
					attrs = append(attrs, slog.String(keyStr, v))
				}
			case int:
				attrs = append(attrs, slog.Int(keyStr, v))
			case uuid.UUID:
				attrs = append(attrs, slog.String(keyStr, v.String()))
			default:
				attrs = append(attrs, slog.Any(keyStr, v))
			}
		}
	}

	return attrs
}

func replaceAttr(config *LogConfig, _ []string, a slog.Attr) slog.Attr {
	// Customize time format
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}

	// Rename level key for some log aggregators
	if a.Key == slog.LevelKey && config.Format == "json" {
		a.Key = "severity"
	}

	return a
}
