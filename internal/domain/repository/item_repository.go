package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemRepository defines the standard operations for item persistence.
// Every read is scoped by owner; there is no unscoped listing.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByOwner retrieves all items whose owner matches the given identity.
	// An owner with no items yields an empty slice, not an error.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Item, error)
}
