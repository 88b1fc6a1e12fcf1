// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"shelf/internal/delivery/http/response"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration and authentication handlers.
type AuthHandler struct {
	uc usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the registration request. Malformed bodies and missing
// fields fail before the use case runs.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("failed to decode registration body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("missing registration fields")
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Login handles the authentication request and returns the issued token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("failed to decode login body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("missing login fields")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Logout acknowledges the request. The authorization guard has already
// verified the token; there is no server-side session to clear.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
