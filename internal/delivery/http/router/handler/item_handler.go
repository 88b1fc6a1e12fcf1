package handler

import (
	"net/http"

	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/response"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for item-related handlers.
type ItemHandler struct {
	uc usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// CreateItem handles item creation. The owner is the authenticated caller;
// nothing in the request body can set or change it.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateItemInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("failed to decode item body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage("missing item title")
	}

	if err := h.uc.CreateItem(c.Request().Context(), ownerID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListItems returns the caller's own items.
func (h *ItemHandler) ListItems(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListItems(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, items)
}

// callerID reads the identity resolved by the authorization guard. A guarded
// route without a resolved identity is a misconfiguration and is treated as
// an authorization failure, not an internal error.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("no identity resolved for protected route")
	}

	return id, nil
}
