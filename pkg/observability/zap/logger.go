package zap

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/idtheory/pkg/observability"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

var (
	ErrUnsupportedFormat = errors.New("observability/zap: unsupported log format")
	ErrUnsupportedLevel  = errors.New("observability/zap: unsupported log level")
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
	output    io.Writer
}

// WithZapLogger wraps an existing zap logger instead of building one from config.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// WithOutput redirects the encoder output. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(opts *loggerOptions) {
		opts.output = w
	}
}

type zapCore struct {
	logger    *ubzap.Logger
	closeOnce sync.Once
	closed    atomic.Bool
	lastError atomic.Value
}

type Logger struct {
	core *zapCore
	log  *ubzap.Logger
}

var _ observability.StructuredLogger = (*Logger)(nil)

func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	opts := &loggerOptions{output: os.Stderr}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		var err error
		base, err = buildZapLogger(config, opts.output)
		if err != nil {
			return nil, err
		}
	}

	core := &zapCore{logger: base}
	core.lastError.Store("")
	return &Logger{core: core, log: base}, nil
}

func buildZapLogger(config observability.LoggerConfig, out io.Writer) (*ubzap.Logger, error) {
	level, err := parseZapLevel(config.Level)
	if err != nil {
		return nil, err
	}

	enc := zapEncoderConfig(config.EnableCaller)
	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(config.Format)) {
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(enc)
	case "json":
		encoder = zapcore.NewJSONEncoder(enc)
	default:
		return nil, ErrUnsupportedFormat
	}

	logger := ubzap.New(zapcore.NewCore(encoder, zapcore.AddSync(out), level))
	if config.EnableCaller {
		logger = logger.WithOptions(ubzap.AddCaller())
	}
	if config.EnableStack {
		logger = logger.WithOptions(ubzap.AddStacktrace(zapcore.ErrorLevel))
	}
	return logger, nil
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn, "warning":
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, ErrUnsupportedLevel
	}
}

func zapEncoderConfig(enableCaller bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if enableCaller {
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.logEntry(levelDebug, message, fields...)
}
func (l *Logger) Info(message string, fields ...map[string]any) {
	l.logEntry(levelInfo, message, fields...)
}
func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.logEntry(levelWarn, message, fields...)
}
func (l *Logger) Error(message string, fields ...map[string]any) {
	l.logEntry(levelError, message, fields...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	if l == nil || l.log == nil {
		return l
	}
	return &Logger{core: l.core, log: l.log.With(anyFields(fields)...)}
}

func (l *Logger) Flush(_ context.Context) error {
	if l == nil || l.core == nil {
		return nil
	}
	return l.core.sync()
}

func (l *Logger) Close() error {
	if l == nil || l.core == nil {
		return nil
	}
	var err error
	l.core.closeOnce.Do(func() {
		l.core.closed.Store(true)
		err = l.core.sync()
	})
	return err
}

func (l *Logger) IsHealthy() bool {
	if l == nil || l.core == nil || l.core.closed.Load() {
		return false
	}
	lastError, _ := l.core.lastError.Load().(string)
	return lastError == ""
}

func (l *Logger) logEntry(level string, message string, fields ...map[string]any) {
	if l == nil || l.core == nil || l.log == nil || l.core.closed.Load() {
		return
	}

	message = observability.SanitizeLogString(message)
	zf := anyFields(observability.MergeFields(fields...))

	switch level {
	case levelDebug:
		l.log.Debug(message, zf...)
	case levelWarn:
		l.log.Warn(message, zf...)
	case levelError:
		l.log.Error(message, zf...)
	default:
		l.log.Info(message, zf...)
	}
}

func anyFields(fields map[string]any) []ubzap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ubzap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, ubzap.Any(k, observability.SanitizeFieldValue(v)))
	}
	return out
}

func (c *zapCore) sync() error {
	err := c.logger.Sync()
	if err != nil && !isIgnorableSyncError(err) {
		c.lastError.Store(err.Error())
		return err
	}
	return nil
}

// Sync on a terminal or pipe reports EINVAL/ENOTTY; that is not a logging failure.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}
