package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type contextKey string

// CallerKey is the context key under which the request's caller label is stored
const CallerKey contextKey = "caller"

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

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

// WithContext creates a logger with caller information taken from ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("caller", "unknown")
	}

	if caller, ok := ctx.Value(CallerKey).(string); ok && caller != "" {
		return logger.WithField("caller", caller)
	}
	return logger.WithField("caller", "unknown")
}

// FromGinContext creates a logger carrying the caller and request id of a gin request
func FromGinContext(c *gin.Context) *Logger {
	logger := New()
	if caller, ok := c.Get(string(CallerKey)); ok {
		if s, ok := caller.(string); ok && s != "" {
			logger = logger.WithField("caller", s)
		}
	}
	if id := c.GetString(RequestIDKey); id != "" {
		logger = logger.WithField("request_id", id)
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

// Setup configures the standard logger with the JSON formatter and the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
