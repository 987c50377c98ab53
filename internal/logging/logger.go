package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger. Development environments get the console
// encoder; everything else gets JSON.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" || env == "test" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// WithRequestID stores the request ID in ctx so loggers built from it carry it.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "" if none was set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request-scoped structured logging for services.
type Logger struct {
	base *zap.Logger
}

// FromContext creates a logger bound to the request in ctx.
func FromContext(ctx context.Context, base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{base: base.With(zap.String("request_id", requestID))}
}

// Zap exposes the underlying logger for callers that need extra fields.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error, fields ...zap.Field) {
	l.base.Error("operation failed", append([]zap.Field{zap.String("operation", operation), zap.Error(err)}, fields...)...)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation, message string, fields ...zap.Field) {
	l.base.Info(message, append([]zap.Field{zap.String("operation", operation)}, fields...)...)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation, message string, fields ...zap.Field) {
	l.base.Warn(message, append([]zap.Field{zap.String("operation", operation)}, fields...)...)
}
