package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for the item service, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem persists a new item for the given owner. The owner id must come
// from the authorization guard, never from client input.
func (srv *itemService) CreateItem(ctx context.Context, ownerID uuid.UUID, input usecase.CreateItemInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrInvalidRequest.WrapMessage("item title must not be empty")
	}

	item := &entity.Item{
		OwnerID: ownerID,
		Title:   input.Title,
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create item", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Debug("Item created", slog.Any("itemID", item.ID), slog.Any("ownerID", ownerID))

	return nil
}

// ListItems returns the owner's items mapped to their client-facing view.
func (srv *itemService) ListItems(ctx context.Context, ownerID uuid.UUID) ([]usecase.ItemOutput, error) {
	items, err := srv.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items by owner")
	}

	outputs := make([]usecase.ItemOutput, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, usecase.ItemOutput{
			ID:    item.ID,
			Title: item.Title,
		})
	}

	return outputs, nil
}
