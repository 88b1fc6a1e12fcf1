package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateItemInput defines the data required to create an item. The owner is
// never part of this input: it comes from the authenticated caller's identity.
type CreateItemInput struct {
	Title string `json:"title" validate:"required"`
}

// ItemOutput is the client-facing view of an item.
type ItemOutput struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ItemUsecase defines the interface for item-related business operations.
type ItemUsecase interface {
	// CreateItem persists a new item owned by ownerID. Empty or
	// whitespace-only titles are rejected before any storage call.
	CreateItem(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) error

	// ListItems returns the caller's own items, oldest first. An owner with
	// no items gets an empty slice.
	ListItems(ctx context.Context, ownerID uuid.UUID) ([]ItemOutput, error)
}
