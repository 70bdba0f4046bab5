package http

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/crestline/lib-portal-commons/guard"
)

// Validation errors.
var (
	// ErrValidationFailed is returned when struct validation fails.
	ErrValidationFailed = errors.New("validation failed")
	// ErrFieldRequired is returned when a required field is missing.
	ErrFieldRequired = errors.New("field is required")
	// ErrFieldMaxLength is returned when a field exceeds maximum length.
	ErrFieldMaxLength = errors.New("field exceeds maximum length")
	// ErrFieldMinLength is returned when a field is below minimum length.
	ErrFieldMinLength = errors.New("field below minimum length")
	// ErrFieldOneOf is returned when a field must be one of allowed values.
	ErrFieldOneOf = errors.New("field must be one of allowed values")
	// ErrFieldEmail is returned when a field must be a valid email.
	ErrFieldEmail = errors.New("field must be a valid email")
	// ErrFieldUUID is returned when a field must be a valid UUID.
	ErrFieldUUID = errors.New("field must be a valid UUID")
	// ErrFieldUSPhone is returned when a field must be a valid US phone number.
	ErrFieldUSPhone = errors.New("field must be a valid US phone number")
	// ErrFieldPositiveAmount is returned when a field must be a positive amount.
	ErrFieldPositiveAmount = errors.New("field must be a positive amount")
	// ErrBodyParseFailed is returned when request body parsing fails.
	ErrBodyParseFailed = errors.New("failed to parse request body")
	// ErrUnsupportedContentType is returned when the Content-Type is not application/json.
	ErrUnsupportedContentType = errors.New("Content-Type must be application/json")
)

// ErrValidatorInit is returned when custom validator registration fails during initialization.
var ErrValidatorInit = errors.New("validator initialization failed")

// validationSentinels lists the errors WriteError treats as client mistakes.
var validationSentinels = []error{
	ErrValidationFailed,
	ErrFieldRequired,
	ErrFieldMaxLength,
	ErrFieldMinLength,
	ErrFieldOneOf,
	ErrFieldEmail,
	ErrFieldUUID,
	ErrFieldUSPhone,
	ErrFieldPositiveAmount,
	ErrBodyParseFailed,
	ErrUnsupportedContentType,
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidators creates and configures the validator with the portal's
// custom validation rules, backed by the guard package.
func initValidators() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Register custom validator for US phone number strings. Empty strings
	// pass so the required tag stays in charge of presence.
	if err := vld.RegisterValidation("us_phone", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		if str == "" {
			return true
		}

		return guard.PhoneNumber(str, "") == nil
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'us_phone': %w", ErrValidatorInit, err)
	}

	// Register custom validator for decimal amounts that must be positive.
	// The field is accessed directly; registering a custom type function for
	// decimal.Decimal would loop inside the validator.
	if err := vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}

		return guard.PositiveDecimal(value, "") == nil
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'positive_decimal': %w", ErrValidatorInit, err)
	}

	// Register custom validator for string amounts that must be positive.
	if err := vld.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		if str == "" {
			return true // Let required tag handle empty strings
		}

		d, parseErr := decimal.NewFromString(str)
		if parseErr != nil {
			return false
		}

		return guard.PositiveDecimal(d, "") == nil
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'positive_amount': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

// GetValidator returns the singleton validator instance.
// Returns the validator and any initialization error that may have occurred.
func GetValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidators()
	})

	return validate, errValidate
}

// ValidateStruct validates a struct using the go-playground/validator tags.
// Returns nil if validation passes, or the first validation error.
func ValidateStruct(payload any) error {
	vld, initErr := GetValidator()
	if initErr != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, initErr)
	}

	if err := vld.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return formatValidationError(validationErrors[0])
		}

		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return nil
}

// validationErrorFormatters maps validation tags to their error formatting functions.
var validationErrorFormatters = map[string]func(field, param string) error{
	"required": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldRequired, field)
	},
	"max": func(field, param string) error {
		return fmt.Errorf("%w: '%s' must be at most %s", ErrFieldMaxLength, field, param)
	},
	"min": func(field, param string) error {
		return fmt.Errorf("%w: '%s' must be at least %s", ErrFieldMinLength, field, param)
	},
	"oneof": func(field, param string) error {
		return fmt.Errorf("%w: '%s' must be one of [%s]", ErrFieldOneOf, field, param)
	},
	"email": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldEmail, field)
	},
	"uuid": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldUUID, field)
	},
	"us_phone": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldUSPhone, field)
	},
	"positive_decimal": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldPositiveAmount, field)
	},
	"positive_amount": func(field, _ string) error {
		return fmt.Errorf("%w: '%s'", ErrFieldPositiveAmount, field)
	},
}

// formatValidationError creates a user-friendly error message from a validation error.
func formatValidationError(fe validator.FieldError) error {
	field := toSnakeCase(fe.Field())

	if formatter, ok := validationErrorFormatters[fe.Tag()]; ok {
		return formatter(field, fe.Param())
	}

	return fmt.Errorf("%w: '%s' failed '%s' check", ErrValidationFailed, field, fe.Tag())
}

// toSnakeCase converts a PascalCase or camelCase string to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder

	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// ParseBodyAndValidate parses the request body into the given struct and validates it.
// Rejects requests with non-JSON Content-Type headers to provide clear error messages.
func ParseBodyAndValidate(fiberCtx *fiber.Ctx, payload any) error {
	ct := fiberCtx.Get(fiber.HeaderContentType)
	if ct != "" && !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		return ErrUnsupportedContentType
	}

	if err := fiberCtx.BodyParser(payload); err != nil {
		return fmt.Errorf("%w: %w", ErrBodyParseFailed, err)
	}

	return ValidateStruct(payload)
}
