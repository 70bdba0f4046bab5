// Package runtime provides runtime failure classification and process-level
// mode configuration for the portal commons library.
package runtime

import "errors"

// FatalCondition identifies a runtime failure category considered
// unrecoverable. Continued execution after one of these is unsafe.
type FatalCondition uint8

// Fatal condition constants cover the fixed set of unrecoverable runtime
// failures the portal recognizes.
const (
	FatalOutOfMemory FatalCondition = iota
	FatalStackOverflow
	FatalBadImageFormat
	FatalInvalidProgram
	FatalExecutionContextLoad
	FatalExecutionContextUnload
	FatalGoroutineAborted
)

// String returns the human-readable name of the fatal condition.
func (c FatalCondition) String() string {
	switch c {
	case FatalOutOfMemory:
		return "out of memory"
	case FatalStackOverflow:
		return "stack exhausted"
	case FatalBadImageFormat:
		return "corrupt binary image"
	case FatalInvalidProgram:
		return "invalid program state"
	case FatalExecutionContextLoad:
		return "execution context cannot be loaded"
	case FatalExecutionContextUnload:
		return "execution context cannot be unloaded"
	case FatalGoroutineAborted:
		return "goroutine forcibly terminated"
	default:
		return "unknown fatal condition"
	}
}

// Sentinel errors for each fatal condition. Wrap one of these (or a
// FatalError) when surfacing an unrecoverable runtime failure so IsFatal can
// classify it.
var (
	ErrOutOfMemory            = errors.New("out of memory")
	ErrStackOverflow          = errors.New("stack exhausted")
	ErrBadImageFormat         = errors.New("corrupt binary image")
	ErrInvalidProgram         = errors.New("invalid program state")
	ErrExecutionContextLoad   = errors.New("execution context cannot be loaded")
	ErrExecutionContextUnload = errors.New("execution context cannot be unloaded")
	ErrGoroutineAborted       = errors.New("goroutine forcibly terminated")
)

var fatalSentinels = [...]error{
	ErrOutOfMemory,
	ErrStackOverflow,
	ErrBadImageFormat,
	ErrInvalidProgram,
	ErrExecutionContextLoad,
	ErrExecutionContextUnload,
	ErrGoroutineAborted,
}

// FatalError wraps a cause with its fatal condition classification.
type FatalError struct {
	Condition FatalCondition
	Err       error
}

// Error returns the condition name, followed by the cause when present.
func (e *FatalError) Error() string {
	if e.Err == nil {
		return e.Condition.String()
	}

	return e.Condition.String() + ": " + e.Err.Error()
}

// Unwrap returns the wrapped cause, if any.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewFatalError wraps err with the given fatal condition.
func NewFatalError(condition FatalCondition, err error) *FatalError {
	return &FatalError{Condition: condition, Err: err}
}

// IsFatal reports whether err belongs to the fixed set of unrecoverable
// runtime conditions. It returns false for nil and for any unclassified
// error. The classification is advisory only; IsFatal takes no action itself
// and leaves the decision to the caller.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var fatal *FatalError
	if errors.As(err, &fatal) {
		return true
	}

	for _, sentinel := range fatalSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
