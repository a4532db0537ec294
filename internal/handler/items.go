package handler

import (
	"encoding/json"

	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves item listing, lookup and mutation endpoints.
type ItemHandler struct {
	Handler
	items *repository.ItemRepository
}

func NewItemHandler(h Handler, items *repository.ItemRepository) *ItemHandler {
	return &ItemHandler{Handler: h, items: items}
}

// ItemsPageRequest binds the paged item listing: page bounds from the
// "start-amount" path segment, the optional provider scope from the
// provider_id query parameter.
type ItemsPageRequest struct {
	Range      string `param:"range" validate:"required"`
	ProviderID *int   `query:"provider_id"`
}

func (r *ItemsPageRequest) Validate() error { return validation.Struct(r) }

// Page returns one page of active items, optionally scoped to a provider.
func (h *ItemHandler) Page(c echo.Context, req *ItemsPageRequest) (database.Rows, error) {
	start, amount, err := parsePageRange(req.Range)
	if err != nil {
		return nil, err
	}
	return h.items.ListPage(c.Request().Context(), req.ProviderID, start, amount)
}

// ItemsByProviderRequest scopes the item listing to one provider.
type ItemsByProviderRequest struct {
	ProviderID int `json:"provider_id" validate:"required"`
}

func (r *ItemsByProviderRequest) Validate() error { return validation.Struct(r) }

// ByProvider returns the active items of one provider.
func (h *ItemHandler) ByProvider(c echo.Context, req *ItemsByProviderRequest) (database.Rows, error) {
	return h.items.ByProvider(c.Request().Context(), req.ProviderID)
}

// ItemIDRequest identifies an item by id.
type ItemIDRequest struct {
	ItemID int `json:"itemId" validate:"required"`
}

func (r *ItemIDRequest) Validate() error { return validation.Struct(r) }

// Item returns an item by id, active or not.
func (h *ItemHandler) Item(c echo.Context, req *ItemIDRequest) (database.Rows, error) {
	return h.items.ByID(c.Request().Context(), req.ItemID)
}

// AddItemRequest is the POST /items/AddItem payload. Amount is a decimal;
// json.Number accepts both quoted and bare numbers from clients.
type AddItemRequest struct {
	ProviderID int         `json:"providerId" validate:"required"`
	Username   string      `json:"username" validate:"required"`
	ItemName   string      `json:"itemName" validate:"required"`
	Amount     json.Number `json:"amount" validate:"required,numeric"`
}

func (r *AddItemRequest) Validate() error { return validation.Struct(r) }

// AddItem creates a one-off item and returns its id.
func (h *ItemHandler) AddItem(c echo.Context, req *AddItemRequest) (database.Rows, error) {
	return h.items.Create(c.Request().Context(),
		req.ProviderID, req.Username, req.ItemName, req.Amount.String())
}

// EditItemRequest is the POST /items/EditItem payload (full replace).
type EditItemRequest struct {
	ItemID   int         `json:"itemId" validate:"required"`
	Username string      `json:"username" validate:"required"`
	ItemName string      `json:"itemName" validate:"required"`
	Amount   json.Number `json:"amount" validate:"required,numeric"`
}

func (r *EditItemRequest) Validate() error { return validation.Struct(r) }

// EditItem overwrites the item's mutable fields.
func (h *ItemHandler) EditItem(c echo.Context, req *EditItemRequest) (database.Rows, error) {
	return h.items.UpdateAll(c.Request().Context(),
		req.ItemID, req.Username, req.ItemName, req.Amount.String())
}

// DeactivateItemRequest identifies the item and its owning username.
type DeactivateItemRequest struct {
	ItemID   int    `json:"itemId" validate:"required"`
	Username string `json:"username" validate:"required"`
}

func (r *DeactivateItemRequest) Validate() error { return validation.Struct(r) }

// DeactivateItem flips the item's active flag. The row is kept and stays
// reachable through Item.
func (h *ItemHandler) DeactivateItem(c echo.Context, req *DeactivateItemRequest) (database.Rows, error) {
	return h.items.Deactivate(c.Request().Context(), req.ItemID, req.Username)
}
