// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record: one registered account, keyed by its login.
// PasswordHash is the only stored credential material and must never be
// serialized into any response body.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Login        string    // The login identifier, validated as an email address. Unique across all users.
	PasswordHash string    // One-way bcrypt hash of the password, salt embedded.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
