package middleware

import (
	"log/slog"
	"net/http"

	"shelf/internal/delivery/http/response"
	domainerrors "shelf/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error into the closed taxonomy.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Domain errors
// carry their own status and fixed message. Echo's own errors (404, 405,
// malformed bodies) map onto the closed taxonomy. Everything else is logged
// with full detail and surfaced only as the generic internal error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusBadRequest:
			_ = response.AppError(c, domainerrors.ErrInvalidRequest)
		case httpErr.Code == http.StatusUnauthorized:
			_ = response.AppError(c, domainerrors.ErrUnauthorized)
		case httpErr.Code < http.StatusInternalServerError:
			_ = c.JSON(httpErr.Code, response.ErrorBody{Error: http.StatusText(httpErr.Code)})
		default:
			m.logUnhandled(err, c)
			_ = response.Internal(c)
		}

		return
	}

	m.logUnhandled(err, c)
	_ = response.Internal(c)
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
