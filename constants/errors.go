package constant

import "errors"

var (
	// ErrUpstreamResponse maps to portal error code 0001.
	ErrUpstreamResponse = errors.New("0001")
	// ErrCustomerNotFound maps to portal error code 0007.
	ErrCustomerNotFound = errors.New("0007")
	// ErrInvalidPhoneNumber maps to portal error code 0012.
	ErrInvalidPhoneNumber = errors.New("0012")
	// ErrPaymentAmountInvalid maps to portal error code 0023.
	ErrPaymentAmountInvalid = errors.New("0023")
)
