// Package guard provides fail-fast argument guards for the customer portal.
//
// Each guard validates one precondition and either returns nil or a
// *GuardError wrapping ErrInvalidArgument. Guards are stateless and safe for
// concurrent use; callers decide whether to abort or continue.
package guard

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is the sentinel error wrapped by every failed guard.
var ErrInvalidArgument = errors.New("invalid argument")

// usPhonePattern matches US phone numbers: optional leading 0 or 1 with
// optional separator, area code (first digit 2-9) optionally parenthesized,
// three-digit exchange, and four-digit line number. Separators are restricted
// to space, hyphen, and period. The pattern is format-only and must not be
// altered; downstream systems depend on it byte-for-byte.
var usPhonePattern = regexp.MustCompile(`^[01]?[- .]?(\([2-9]\d{2}\)|[2-9]\d{2})[- .]?\d{3}[- .]?\d{4}$`)

// defaultLabel names the guarded value when the caller provides no label.
const defaultLabel = "value"

// GuardError represents a failed guard with the check that failed and the
// label of the offending value.
type GuardError struct {
	Check   string
	Label   string
	Message string
}

// Error returns the formatted guard failure message.
func (e *GuardError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}

	return "invalid argument: " + e.Message
}

// Unwrap returns the sentinel invalid-argument error for errors.Is.
func (e *GuardError) Unwrap() error {
	return ErrInvalidArgument
}

// NotNil returns an error if v is nil. Typed nils (nil pointers, maps,
// slices, channels, and functions stored in a non-nil interface) count as nil.
func NotNil(v any, label string) error {
	if !isNil(v) {
		return nil
	}

	return fail("NotNil", label, "%s is required")
}

// NotEmpty returns an error if s is empty or contains only whitespace.
func NotEmpty(s, label string) error {
	if strings.TrimSpace(s) != "" {
		return nil
	}

	return fail("NotEmpty", label, "%s must not be empty")
}

// PhoneNumber returns an error unless s matches the fixed US phone-number
// pattern. The check does not verify the number is reachable or allocated.
// A missing value fails as required rather than as malformed.
func PhoneNumber(s, label string) error {
	if strings.TrimSpace(s) == "" {
		return fail("PhoneNumber", label, "%s is required")
	}

	if !usPhonePattern.MatchString(s) {
		return fail("PhoneNumber", label, "%s must be a valid US phone number")
	}

	return nil
}

// PositiveInt returns an error unless n is strictly greater than zero.
func PositiveInt(n int64, label string) error {
	if n > 0 {
		return nil
	}

	return fail("PositiveInt", label, "%s must be greater than zero")
}

// PositiveDecimal returns an error unless d is strictly greater than zero.
func PositiveDecimal(d decimal.Decimal, label string) error {
	if d.IsPositive() {
		return nil
	}

	return fail("PositiveDecimal", label, "%s must be greater than zero")
}

// UUID returns an error unless s parses as a UUID.
func UUID(s, label string) error {
	if _, err := uuid.Parse(s); err == nil {
		return nil
	}

	return fail("UUID", label, "%s must be a valid UUID")
}

// That returns an error with msg when ok is false. Use for one-off
// preconditions not covered by the typed guards.
func That(ok bool, msg string) error {
	if ok {
		return nil
	}

	return &GuardError{Check: "That", Message: msg}
}

// fail builds a GuardError for the given check, substituting the default
// label when the caller provided none. format must contain a single %s verb
// for the label.
func fail(check, label, format string) error {
	if strings.TrimSpace(label) == "" {
		label = defaultLabel
	}

	return &GuardError{
		Check:   check,
		Label:   label,
		Message: fmt.Sprintf(format, label),
	}
}

// isNil checks if a value is nil, handling both untyped nil and typed nil
// (nil interface values with concrete types).
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
