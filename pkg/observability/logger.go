package observability

import (
	"context"
	"strings"
	"time"
)

// LogEntry is a structured log record as captured by TestLogger.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// StructuredLogger is the logging surface used across idtheory: a message plus
// optional map fields, with derived loggers carrying extra fields.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	Flush(ctx context.Context) error
	Close() error
	IsHealthy() bool
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format       string `json:"format" yaml:"format"`
	Level        string `json:"level" yaml:"level"`
	EnableStack  bool   `json:"enable_stack" yaml:"enable_stack"`
	EnableCaller bool   `json:"enable_caller" yaml:"enable_caller"`
}

type LoggerFactory interface {
	CreateConsoleLogger(config LoggerConfig) (StructuredLogger, error)
	CreateTestLogger() StructuredLogger
	CreateNoOpLogger() StructuredLogger
}

// SanitizeLogString removes control characters that could enable log forging.
func SanitizeLogString(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")
	return value
}

// SanitizeFieldValue applies SanitizeLogString to string values and leaves
// everything else untouched.
func SanitizeFieldValue(value any) any {
	if s, ok := value.(string); ok {
		return SanitizeLogString(s)
	}
	return value
}

// MergeFields flattens field sets left to right; later keys win.
func MergeFields(fieldSets ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, set := range fieldSets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}
