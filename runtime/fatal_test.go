//go:build unit

package runtime

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFatal_Nil(t *testing.T) {
	t.Parallel()

	require.False(t, IsFatal(nil))
}

func TestIsFatal_GenericError(t *testing.T) {
	t.Parallel()

	require.False(t, IsFatal(errors.New("connection refused")))
	require.False(t, IsFatal(fmt.Errorf("wrapped: %w", errors.New("timeout"))))
}

func TestIsFatal_Sentinels(t *testing.T) {
	t.Parallel()

	for _, sentinel := range fatalSentinels {
		require.True(t, IsFatal(sentinel), "sentinel %q must classify as fatal", sentinel)
	}
}

func TestIsFatal_WrappedSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("allocating response buffer: %w", ErrOutOfMemory)
	require.True(t, IsFatal(err))
}

func TestIsFatal_FatalError(t *testing.T) {
	t.Parallel()

	fatal := NewFatalError(FatalStackOverflow, errors.New("goroutine stack exceeds limit"))
	require.True(t, IsFatal(fatal))
	require.True(t, IsFatal(fmt.Errorf("handler crashed: %w", fatal)))
}

func TestFatalError_Message(t *testing.T) {
	t.Parallel()

	fatal := NewFatalError(FatalBadImageFormat, errors.New("plugin symbol table truncated"))
	require.Equal(t, "corrupt binary image: plugin symbol table truncated", fatal.Error())
	require.ErrorIs(t, fatal, fatal.Err)

	bare := NewFatalError(FatalOutOfMemory, nil)
	require.Equal(t, "out of memory", bare.Error())
}

func TestFatalCondition_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "out of memory", FatalOutOfMemory.String())
	require.Equal(t, "stack exhausted", FatalStackOverflow.String())
	require.Equal(t, "goroutine forcibly terminated", FatalGoroutineAborted.String())
	require.Equal(t, "unknown fatal condition", FatalCondition(200).String())
}

func TestProductionMode_Toggle(t *testing.T) {
	SetProductionMode(true)
	require.True(t, IsProductionMode())

	SetProductionMode(false)
	require.False(t, IsProductionMode())
}
