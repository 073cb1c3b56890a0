package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	principalKey contextKey = "principal_id"
	requestIDKey contextKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ContextWithPrincipal stores the acting principal id for later log enrichment
func ContextWithPrincipal(ctx context.Context, principalID string) context.Context {
	return context.WithValue(ctx, principalKey, principalID)
}

// ContextWithRequestID stores the request id for later log enrichment
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithContext creates a logger with principal and request information
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if principal, ok := ctx.Value(principalKey).(string); ok && principal != "" {
		logger.Entry = logger.Entry.WithField("principal_id", principal)
	} else {
		logger.Entry = logger.Entry.WithField("principal_id", "unknown")
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
