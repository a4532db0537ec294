package handler

import (
	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/service"
	"github.com/labstack/echo/v4"
)

// SearchHandler serves the /searches group. It reuses the same filter
// payloads as the provider group; only the matching variants differ.
type SearchHandler struct {
	Handler
	search *service.SearchService
}

func NewSearchHandler(h Handler, search *service.SearchService) *SearchHandler {
	return &SearchHandler{Handler: h, search: search}
}

// Name returns providers whose name contains the filter.
func (h *SearchHandler) Name(c echo.Context, req *NameFilterRequest) (database.Rows, error) {
	return h.search.ByNameContains(c.Request().Context(), req.ProviderName)
}

// City returns providers whose city contains the filter.
func (h *SearchHandler) City(c echo.Context, req *CityFilterRequest) (database.Rows, error) {
	return h.search.ByCityContains(c.Request().Context(), req.City)
}

// State returns providers in the given state.
func (h *SearchHandler) State(c echo.Context, req *StateFilterRequest) (database.Rows, error) {
	return h.search.ByState(c.Request().Context(), req.State)
}

// Item returns providers offering a matching item.
func (h *SearchHandler) Item(c echo.Context, req *ItemFilterRequest) (database.Rows, error) {
	return h.search.ByItem(c.Request().Context(), req.Item)
}
