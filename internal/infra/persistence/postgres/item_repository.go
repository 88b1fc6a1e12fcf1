package postgres

import (
	"context"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	itemM := model.FromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to create item")
	}

	return nil
}

// FindByOwner retrieves all items owned by the given identity. The owner
// filter is applied in SQL; no unscoped path exists.
func (repo *itemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Item, error) {
	var itemMs []model.ItemModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by owner")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, model.ToItemDomain(&itemMs[i]))
	}

	return items, nil
}
