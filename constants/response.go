package constant

const (
	// DefaultErrorTitle is the fallback error title used in portal error
	// responses when no specific title is provided.
	DefaultErrorTitle = "request_failed"
	// DefaultInternalErrorMessage is the fallback message for unclassified
	// server errors.
	DefaultInternalErrorMessage = "An internal error occurred"
	// DetailResponseBody is the detail key under which an upstream response
	// body is attached to a portal error.
	DetailResponseBody = "ResponseBody"
)
