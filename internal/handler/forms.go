package handler

import (
	"encoding/json"

	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/service"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
)

// FormHandler serves the /forms group: the search variants backing the UI
// forms and the recurring-item creation form.
type FormHandler struct {
	Handler
	items  *repository.ItemRepository
	search *service.SearchService
}

func NewFormHandler(h Handler, items *repository.ItemRepository, search *service.SearchService) *FormHandler {
	return &FormHandler{Handler: h, items: items, search: search}
}

// SearchName returns providers matching the name exactly.
func (h *FormHandler) SearchName(c echo.Context, req *NameFilterRequest) (database.Rows, error) {
	return h.search.ByNameExact(c.Request().Context(), req.ProviderName)
}

// SearchCity returns providers whose city contains the filter.
func (h *FormHandler) SearchCity(c echo.Context, req *CityFilterRequest) (database.Rows, error) {
	return h.search.ByCityContains(c.Request().Context(), req.City)
}

// SearchState returns providers in the given state.
func (h *FormHandler) SearchState(c echo.Context, req *StateFilterRequest) (database.Rows, error) {
	return h.search.ByState(c.Request().Context(), req.State)
}

// FormAddItemRequest is the POST /forms/AddItem payload. The owning
// username comes from the body like every other identity in the API.
// RecurringTime names the recurrence interval and is required only when
// Recurring is set.
type FormAddItemRequest struct {
	Provider      int         `json:"provider" validate:"required"`
	Username      string      `json:"username" validate:"required"`
	ItemName      string      `json:"itemName" validate:"required"`
	Amount        json.Number `json:"amount" validate:"required,numeric"`
	Recurring     bool        `json:"recurring"`
	RecurringTime string      `json:"recurringTime" validate:"required_if=Recurring true"`
}

func (r *FormAddItemRequest) Validate() error { return validation.Struct(r) }

// AddItem creates an item with recurrence fields and returns its id.
func (h *FormHandler) AddItem(c echo.Context, req *FormAddItemRequest) (database.Rows, error) {
	return h.items.CreateRecurring(c.Request().Context(),
		req.Provider, req.Username, req.ItemName, req.Amount.String(),
		req.Recurring, req.RecurringTime)
}
