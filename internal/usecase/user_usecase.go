// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after successful authentication.
type LoginOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new identity record after validating the login as an
	// email address and the password length. Registering an existing login
	// fails with the user-already-exists kind.
	Register(ctx context.Context, input RegisterInput) error

	// Authenticate verifies credentials and issues a bearer token. A missing
	// account and a wrong password fail identically.
	Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout acknowledges the request without side effect. Token validity is
	// purely signature + expiry; there is no server-side session to clear.
	Logout(ctx context.Context) error
}
