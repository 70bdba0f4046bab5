// Package zap adapts go.uber.org/zap to the portal log.Logger interface.
package zap

import (
	"context"

	logpkg "github.com/crestline/lib-portal-commons/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured logger backed by zap that implements log.Logger.
type Logger struct {
	logger *zap.Logger
}

// Compile-time assertion: *Logger implements logpkg.Logger.
var _ logpkg.Logger = (*Logger)(nil)

// NewProduction creates a Logger with zap's production configuration.
func NewProduction() (*Logger, error) {
	zl, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{logger: zl}, nil
}

// NewDevelopment creates a Logger with zap's development configuration.
func NewDevelopment() (*Logger, error) {
	zl, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{logger: zl}, nil
}

// Wrap adapts an existing zap logger.
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{logger: zl}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log implements log.Logger. It dispatches to the appropriate zap level.
// If ctx carries an active OpenTelemetry span, trace_id and span_id are
// automatically appended so logs correlate with distributed traces.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := fieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	switch level {
	case logpkg.LevelDebug:
		l.must().Debug(msg, zapFields...)
	case logpkg.LevelInfo:
		l.must().Info(msg, zapFields...)
	case logpkg.LevelWarn:
		l.must().Warn(msg, zapFields...)
	case logpkg.LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Error(msg, zapFields...)
	}
}

// With returns a logger that attaches fields to every log event.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{logger: l.must().With(fieldsToZap(fields)...)}
}

// Enabled reports whether entries at level would be emitted.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.must().Core().Enabled(levelToZap(level))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.must().Sync()
}

func fieldsToZap(fields []logpkg.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok && field.Key == "error" {
			zapFields = append(zapFields, zap.Error(err))
			continue
		}

		zapFields = append(zapFields, zap.Any(field.Key, field.Value))
	}

	return zapFields
}

func levelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
	}
}
