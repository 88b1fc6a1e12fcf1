package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a record tracked on behalf of exactly one owner. OwnerID is set at
// creation from the authenticated caller's identity and is never taken from
// client input afterwards.
type Item struct {
	ID        uuid.UUID // The unique identifier for the item.
	OwnerID   uuid.UUID // The identity that created, and may read, this item.
	Title     string    // Non-empty display title.
	CreatedAt time.Time // Timestamp of when this item was created.
}
