// Package commons provides shared validation and error primitives used across
// the customer-portal services.
//
// The root package carries the portal's classified error type and its detail
// enrichment helpers. Argument guards live in the guard subpackage, fatal
// runtime classification in runtime, and HTTP-facing helpers in net/http.
//
// Typical usage in a handler:
//
//	if err := guard.PhoneNumber(req.Phone, "phone_number"); err != nil {
//		return httputil.WriteError(c, err)
//	}
//
// This package is intentionally dependency-light; specialized integrations
// live in subpackages such as net/http and zap.
package commons
