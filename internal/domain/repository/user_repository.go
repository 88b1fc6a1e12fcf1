// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shelf/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateLogin is returned when an insert collides with the storage-level
// unique constraint on login. The constraint, not the caller's pre-check, is
// the authoritative guard against concurrent duplicate registrations.
var ErrDuplicateLogin = errors.New("login already taken")

// UserRepository defines the standard operations for identity-record persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByLogin retrieves a single user by their login.
	// Returns ErrUserNotFound when no record matches.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Create persists a new identity record.
	// Returns ErrDuplicateLogin when the login is already registered.
	Create(ctx context.Context, user *entity.User) error
}
