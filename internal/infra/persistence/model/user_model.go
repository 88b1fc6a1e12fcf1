// Package model contains the GORM persistence models that mirror the
// database tables. Domain entities are mapped to and from these models at the
// repository boundary so the domain stays free of persistence tags.
package model

import (
	"time"

	"github.com/google/uuid"

	"shelf/internal/domain/entity"
)

// UserModel mirrors the 'users' table. The unique index on login is the
// authoritative guard against concurrent duplicate registrations: the
// find-then-create pre-check in the use case only exists for a friendly error.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Login        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain maps the persistence model to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Login:        m.Login,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}
