package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// controlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Newlines, carriage returns, and tabs in log messages
// can forge fake log entries or inject false audit trail entries.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitize escapes control characters in a single string value.
func sanitize(s string) string {
	return controlCharReplacer.Replace(s)
}

// GoLogger is a Logger backed by the standard library log package. It is the
// default implementation for tools and tests; services use the zap adapter.
type GoLogger struct {
	Level  Level
	out    *stdlog.Logger
	fields []Field
}

// NewGoLogger creates a GoLogger writing to stderr at the given level.
func NewGoLogger(level Level) *GoLogger {
	return NewGoLoggerWithWriter(level, os.Stderr)
}

// NewGoLoggerWithWriter creates a GoLogger writing to w at the given level.
func NewGoLoggerWithWriter(level Level, w io.Writer) *GoLogger {
	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Log writes a log line when level is enabled. String values are sanitized
// against control-character injection.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder

	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(sanitize(msg))

	writeFields(&sb, l.fields)
	writeFields(&sb, fields)

	l.out.Print(sb.String())
}

func writeFields(sb *strings.Builder, fields []Field) {
	for _, field := range fields {
		sb.WriteString(" ")
		sb.WriteString(field.Key)
		sb.WriteString("=")

		if s, ok := field.Value.(string); ok {
			sb.WriteString(sanitize(s))
			continue
		}

		fmt.Fprintf(sb, "%v", field.Value)
	}
}

// With returns a logger that attaches fields to every log event.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)

	return &GoLogger{
		Level:  l.Level,
		out:    l.out,
		fields: combined,
	}
}

// Enabled reports whether entries at level would be emitted.
func (l *GoLogger) Enabled(level Level) bool {
	return l.Level >= level
}
