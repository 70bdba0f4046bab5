//go:build unit

package log

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "warn", LevelWarn.String())
	require.Equal(t, "info", LevelInfo.String())
	require.Equal(t, "debug", LevelDebug.String())
	require.Equal(t, "unknown", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "Error", want: LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestGoLogger_LevelCeiling(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLoggerWithWriter(LevelWarn, &buf)

	logger.Log(context.Background(), LevelError, "boom")
	logger.Log(context.Background(), LevelWarn, "careful")
	logger.Log(context.Background(), LevelInfo, "routine")
	logger.Log(context.Background(), LevelDebug, "noise")

	out := buf.String()
	require.Contains(t, out, "boom")
	require.Contains(t, out, "careful")
	require.NotContains(t, out, "routine")
	require.NotContains(t, out, "noise")
}

func TestGoLogger_FieldsAndWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLoggerWithWriter(LevelDebug, &buf).With(String("component", "payments"))

	logger.Log(context.Background(), LevelInfo, "created",
		Int("attempt", 2),
		Bool("retried", true),
		Err(errors.New("previous timeout")),
	)

	out := buf.String()
	require.Contains(t, out, "component=payments")
	require.Contains(t, out, "attempt=2")
	require.Contains(t, out, "retried=true")
	require.Contains(t, out, "error=previous timeout")
}

func TestGoLogger_SanitizesControlCharacters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewGoLoggerWithWriter(LevelDebug, &buf)
	logger.Log(context.Background(), LevelInfo, "user input: fake\nentry", String("value", "a\tb"))

	out := buf.String()
	require.Contains(t, out, `fake\nentry`)
	require.Contains(t, out, `a\tb`)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	logger.Log(context.Background(), LevelError, "dropped")

	require.False(t, logger.Enabled(LevelError))
	require.Same(t, logger, logger.With(String("k", "v")))
}
