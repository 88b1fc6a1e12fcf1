// Package middleware contains the HTTP middleware chain: the authorization
// guard, the error renderer, request ids and request logging.
package middleware

import (
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo context key under which the guard stores the
// authenticated caller's identity. Handlers must read the caller identity
// from here and nowhere else.
const KeyUserID = "userID"

// AuthMiddleware is the authorization guard applied to every protected route.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token before the handler runs. Missing,
// malformed, tampered and expired tokens all short-circuit with the same
// 401 body; the handler is never invoked.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token verification failed")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token subject is not a valid identity")
		}

		// Thread the resolved identity explicitly: echo context for handlers,
		// request context for the layers below.
		c.Set(KeyUserID, userID)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithUserID(c.Request().Context(), userID),
		))

		return next(c)
	}
}
