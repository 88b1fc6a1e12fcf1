// Package response defines the wire format shared by all handlers.
package response

import (
	"net/http"

	domainerrors "shelf/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the single error response shape: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// AppError writes the fixed status and message of a domain error kind.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), ErrorBody{Error: appErr.Message()})
}

// Internal writes the generic internal-error response. No detail from the
// underlying failure ever reaches the body.
func Internal(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: domainerrors.ErrInternal.Message()})
}

// JSON writes a success payload with the given status.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
