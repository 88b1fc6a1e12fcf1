package service

import (
	"shelf/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claim set carried by an issued bearer token.
// Subject holds the identity id; Login is carried alongside it so the
// account can be named without a store round-trip.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given identity.
	Issue(user *entity.User) (string, error)

	// Verify checks signature, structure and expiry together and returns the
	// embedded claims. Every failure mode yields the same error so callers
	// cannot distinguish a tampered token from an expired one.
	Verify(tokenString string) (*Claims, error)
}
