//go:build unit

package http

import (
	gohttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"required,us_phone"`
}

type paymentRequest struct {
	Amount     decimal.Decimal `validate:"positive_decimal"`
	AmountText string          `validate:"omitempty,positive_amount"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateStruct(contactRequest{
		Email:       "pat@example.com",
		PhoneNumber: "214-555-0123",
	}))

	require.NoError(t, ValidateStruct(paymentRequest{
		Amount:     decimal.RequireFromString("19.99"),
		AmountText: "5",
	}))
}

func TestValidateStruct_RequiredField(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(contactRequest{PhoneNumber: "214-555-0123"})
	require.ErrorIs(t, err, ErrFieldRequired)
	require.Contains(t, err.Error(), "'email'")
}

func TestValidateStruct_USPhone(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(contactRequest{
		Email:       "pat@example.com",
		PhoneNumber: "123-555-0123",
	})
	require.ErrorIs(t, err, ErrFieldUSPhone)
	require.Contains(t, err.Error(), "'phone_number'")
}

func TestValidateStruct_PositiveDecimal(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(paymentRequest{Amount: decimal.Zero})
	require.ErrorIs(t, err, ErrFieldPositiveAmount)

	err = ValidateStruct(paymentRequest{Amount: decimal.NewFromInt(-3)})
	require.ErrorIs(t, err, ErrFieldPositiveAmount)
}

func TestValidateStruct_PositiveAmountString(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(paymentRequest{
		Amount:     decimal.NewFromInt(1),
		AmountText: "-10.50",
	})
	require.ErrorIs(t, err, ErrFieldPositiveAmount)

	err = ValidateStruct(paymentRequest{
		Amount:     decimal.NewFromInt(1),
		AmountText: "not-a-number",
	})
	require.ErrorIs(t, err, ErrFieldPositiveAmount)
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "phone_number", toSnakeCase("PhoneNumber"))
	require.Equal(t, "email", toSnakeCase("Email"))
	require.Equal(t, "amount_text", toSnakeCase("amountText"))
}

func TestParseBodyAndValidate(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Post("/contacts", func(c *fiber.Ctx) error {
		var req contactRequest
		if err := ParseBodyAndValidate(c, &req); err != nil {
			return WriteError(c, err)
		}

		return NoContent(c)
	})

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		resp, err := app.Test(jsonRequest(`{"Email":"pat@example.com","PhoneNumber":"(214) 555-0123"}`, fiber.MIMEApplicationJSON))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("invalid phone", func(t *testing.T) {
		t.Parallel()

		resp, err := app.Test(jsonRequest(`{"Email":"pat@example.com","PhoneNumber":"123-555-0123"}`, fiber.MIMEApplicationJSON))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()

		resp, err := app.Test(jsonRequest(`Email=pat`, fiber.MIMEApplicationForm))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func jsonRequest(body, contentType string) *gohttp.Request {
	req := httptest.NewRequest(fiber.MethodPost, "/contacts", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, contentType)

	return req
}
