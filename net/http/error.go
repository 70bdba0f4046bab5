package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	commons "github.com/crestline/lib-portal-commons"
	constant "github.com/crestline/lib-portal-commons/constants"
	"github.com/crestline/lib-portal-commons/guard"
)

// ErrorResponse is the JSON error envelope returned by portal handlers.
type ErrorResponse struct {
	Code    string            `json:"code,omitempty"`
	Title   string            `json:"title,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteError maps err to the portal error envelope and writes it. Guard
// failures become 400 responses, classified portal errors keep their code and
// details under 422, and anything else is reported as a generic 500 with no
// internal detail leaked.
func WriteError(c *fiber.Ctx, err error) error {
	var portalErr *commons.Error

	switch {
	case errors.As(err, &portalErr):
		return JSONResponse(c, fiber.StatusUnprocessableEntity, ErrorResponse{
			Code:    portalErr.Code,
			Title:   portalErr.Title,
			Message: portalErr.Message,
			Details: portalErr.Details,
		})
	case errors.Is(err, guard.ErrInvalidArgument), IsValidationError(err):
		return JSONResponse(c, fiber.StatusBadRequest, ErrorResponse{
			Code:    strconv.Itoa(fiber.StatusBadRequest),
			Title:   "invalid_request",
			Message: err.Error(),
		})
	default:
		return JSONResponse(c, fiber.StatusInternalServerError, ErrorResponse{
			Code:    strconv.Itoa(fiber.StatusInternalServerError),
			Title:   constant.DefaultErrorTitle,
			Message: constant.DefaultInternalErrorMessage,
		})
	}
}

// BadRequest sends an HTTP 400 Bad Request response with a custom body.
func BadRequest(c *fiber.Ctx, body any) error {
	return JSONResponse(c, fiber.StatusBadRequest, body)
}

// NotFound sends an HTTP 404 Not Found response with a custom code, title and message.
func NotFound(c *fiber.Ctx, code, title, message string) error {
	return JSONResponse(c, fiber.StatusNotFound, ErrorResponse{
		Code:    code,
		Title:   title,
		Message: message,
	})
}
