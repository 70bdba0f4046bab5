package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	commons "github.com/crestline/lib-portal-commons"
	constant "github.com/crestline/lib-portal-commons/constants"
)

// StatusSuccessful reports whether status falls in the conventional HTTP
// success range (200-299 inclusive).
func StatusSuccessful(status int) bool {
	return status >= fiber.StatusOK && status < fiber.StatusMultipleChoices
}

// EnsureSuccess returns nil when status is a successful HTTP status code.
// Otherwise it builds a portal error from the given classification code and
// message, with the response body's string form attached under the
// ResponseBody detail key.
//
// body is opaque; strings, byte slices, and Stringers are rendered directly,
// anything else through fmt. A nil body yields an empty body segment in the
// message and no ResponseBody detail.
func EnsureSuccess(status int, code, message string, body any) error {
	if StatusSuccessful(status) {
		return nil
	}

	bodyText := formatBody(body)

	e := commons.NewError(code, constant.DefaultErrorTitle,
		fmt.Sprintf("%s. Response code: %d. Response body: %s.", message, status, bodyText))

	if bodyText != "" {
		if enriched, err := commons.AddDetail(e, constant.DetailResponseBody, bodyText); err == nil {
			e = enriched
		}
	}

	return e
}

// formatBody renders an opaque response body for messages and details.
func formatBody(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		return b
	case []byte:
		return string(b)
	case fmt.Stringer:
		return b.String()
	default:
		return fmt.Sprintf("%v", b)
	}
}

// JSONResponse writes a JSON body with the given status code.
func JSONResponse(c *fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(body)
}

// OK sends an HTTP 200 OK response with a custom body.
func OK(c *fiber.Ctx, body any) error {
	return JSONResponse(c, fiber.StatusOK, body)
}

// Created sends an HTTP 201 Created response with a custom body.
func Created(c *fiber.Ctx, body any) error {
	return JSONResponse(c, fiber.StatusCreated, body)
}

// NoContent sends an HTTP 204 No Content response without a body.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
