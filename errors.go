package commons

import (
	constant "github.com/crestline/lib-portal-commons/constants"
	"github.com/crestline/lib-portal-commons/guard"
)

// Error represents a portal business failure with an error-code
// classification, a human-readable message, and a string-keyed detail map
// used to attach diagnostic context before propagation.
type Error struct {
	EntityType string            `json:"entityType,omitempty"`
	Title      string            `json:"title,omitempty"`
	Message    string            `json:"message,omitempty"`
	Code       string            `json:"code,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Err        error             `json:"err,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error with the given classification code, title, and
// message. The detail map is allocated lazily by AddDetail.
func NewError(code, title, message string) *Error {
	return &Error{
		Code:    code,
		Title:   title,
		Message: message,
	}
}

// AddDetail attaches a diagnostic detail to e under key and returns the same
// instance. An existing entry for key is overwritten. The error, key, and
// value are all required.
//
// Details are expected to be added sequentially by a single logical
// error-handling path; concurrent mutation of one Error is not supported.
func AddDetail(e *Error, key, value string) (*Error, error) {
	if err := guard.NotNil(e, "error"); err != nil {
		return nil, err
	}

	if err := guard.NotEmpty(key, "detail key"); err != nil {
		return nil, err
	}

	if err := guard.NotEmpty(value, "detail value"); err != nil {
		return nil, err
	}

	if e.Details == nil {
		e.Details = make(map[string]string)
	}

	e.Details[key] = value

	return e, nil
}

// BusinessError validates the error and returns the appropriate portal error
// with code, title, and message.
//
// Parameters:
//   - err: The error code to be validated (ref: constants/errors.go).
//   - entityType: The type of the entity related to the error.
//
// Returns:
//   - error: The populated portal error, or err unchanged when the code is
//     not recognized.
func BusinessError(err error, entityType string) error {
	errorMap := map[error]error{
		constant.ErrUpstreamResponse: &Error{
			EntityType: entityType,
			Code:       constant.ErrUpstreamResponse.Error(),
			Title:      "Upstream Response Failure",
			Message:    "An upstream service returned an unexpected response. Please try again, and contact support if the problem persists.",
		},
		constant.ErrCustomerNotFound: &Error{
			EntityType: entityType,
			Code:       constant.ErrCustomerNotFound.Error(),
			Title:      "Customer Not Found",
			Message:    "The requested customer does not exist in our records. Please verify the customer identifier and try again.",
		},
		constant.ErrInvalidPhoneNumber: &Error{
			EntityType: entityType,
			Code:       constant.ErrInvalidPhoneNumber.Error(),
			Title:      "Invalid Phone Number",
			Message:    "The provided phone number is not a valid US phone number. Please check the number and try again.",
		},
		constant.ErrPaymentAmountInvalid: &Error{
			EntityType: entityType,
			Code:       constant.ErrPaymentAmountInvalid.Error(),
			Title:      "Invalid Payment Amount",
			Message:    "The payment amount must be greater than zero. Please correct the amount and try again.",
		},
	}
	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
