package model

import (
	"time"

	"github.com/google/uuid"

	"shelf/internal/domain/entity"
)

// ItemModel mirrors the 'items' table. OwnerID is indexed because every read
// filters on it.
type ItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// ToItemDomain maps the persistence model to a pure domain entity.
func ToItemDomain(m *ItemModel) *entity.Item {
	return &entity.Item{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
}

// FromItemDomain maps a domain entity to its persistence model.
func FromItemDomain(item *entity.Item) *ItemModel {
	return &ItemModel{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Title:     item.Title,
		CreatedAt: item.CreatedAt,
	}
}
