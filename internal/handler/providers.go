package handler

import (
	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/service"
	"github.com/opendirectory/providerdir/internal/validation"
	"github.com/labstack/echo/v4"
)

// ProviderHandler serves the provider listing, lookup, search and mutation
// endpoints.
type ProviderHandler struct {
	Handler
	providers *repository.ProviderRepository
	search    *service.SearchService
}

func NewProviderHandler(h Handler, providers *repository.ProviderRepository, search *service.SearchService) *ProviderHandler {
	return &ProviderHandler{Handler: h, providers: providers, search: search}
}

// List returns all active providers.
func (h *ProviderHandler) List(c echo.Context, _ *EmptyRequest) (database.Rows, error) {
	return h.providers.List(c.Request().Context())
}

// Count returns the active provider count as a single-row result set.
func (h *ProviderHandler) Count(c echo.Context, _ *EmptyRequest) (database.Rows, error) {
	return h.providers.Count(c.Request().Context())
}

// PageRequest binds the "start-amount" path segment of paged listings.
type PageRequest struct {
	Range string `param:"range" validate:"required"`
}

func (r *PageRequest) Validate() error { return validation.Struct(r) }

// Page returns one page of active providers. The page bounds arrive as a
// single "start-amount" path segment.
func (h *ProviderHandler) Page(c echo.Context, req *PageRequest) (database.Rows, error) {
	start, amount, err := parsePageRange(req.Range)
	if err != nil {
		return nil, err
	}
	return h.providers.ListPage(c.Request().Context(), start, amount)
}

// NameFilterRequest carries a provider name filter.
type NameFilterRequest struct {
	ProviderName string `json:"providerName" validate:"required"`
}

func (r *NameFilterRequest) Validate() error { return validation.Struct(r) }

// SearchByName returns active providers whose name contains the filter.
func (h *ProviderHandler) SearchByName(c echo.Context, req *NameFilterRequest) (database.Rows, error) {
	return h.search.ByNameContains(c.Request().Context(), req.ProviderName)
}

// CityFilterRequest carries a city filter.
type CityFilterRequest struct {
	City string `json:"city" validate:"required"`
}

func (r *CityFilterRequest) Validate() error { return validation.Struct(r) }

// SearchByCity returns active providers in exactly the given city.
func (h *ProviderHandler) SearchByCity(c echo.Context, req *CityFilterRequest) (database.Rows, error) {
	return h.search.ByCityExact(c.Request().Context(), req.City)
}

// StateFilterRequest carries a state filter.
type StateFilterRequest struct {
	State string `json:"state" validate:"required"`
}

func (r *StateFilterRequest) Validate() error { return validation.Struct(r) }

// SearchByState returns active providers in the given state.
func (h *ProviderHandler) SearchByState(c echo.Context, req *StateFilterRequest) (database.Rows, error) {
	return h.search.ByState(c.Request().Context(), req.State)
}

// ItemFilterRequest carries an item name filter.
type ItemFilterRequest struct {
	Item string `json:"item" validate:"required"`
}

func (r *ItemFilterRequest) Validate() error { return validation.Struct(r) }

// SearchByItem returns active providers offering a matching item.
func (h *ProviderHandler) SearchByItem(c echo.Context, req *ItemFilterRequest) (database.Rows, error) {
	return h.search.ByItem(c.Request().Context(), req.Item)
}

// AddProviderRequest is the POST /providers/AddProvider payload.
// AddressLine2 is optional and stored as NULL when empty.
type AddProviderRequest struct {
	ProviderName string `json:"providerName" validate:"required"`
	Username     string `json:"username" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	Zipcode      string `json:"zipcode" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	PhoneType    string `json:"phoneType" validate:"required"`
	Email        string `json:"email" validate:"required"`
}

func (r *AddProviderRequest) Validate() error { return validation.Struct(r) }

func (r *AddProviderRequest) params() repository.ProviderParams {
	return repository.ProviderParams{
		ProviderName: r.ProviderName,
		Username:     r.Username,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Zipcode:      r.Zipcode,
		City:         r.City,
		State:        r.State,
		PhoneNumber:  r.PhoneNumber,
		PhoneType:    r.PhoneType,
		Email:        r.Email,
	}
}

// AddProvider creates an active provider listing and returns its id.
func (h *ProviderHandler) AddProvider(c echo.Context, req *AddProviderRequest) (database.Rows, error) {
	return h.providers.Create(c.Request().Context(), req.params())
}

// GetSingleProviderRequest identifies one listing by its natural key.
type GetSingleProviderRequest struct {
	ProviderName string `json:"providerName" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
}

func (r *GetSingleProviderRequest) Validate() error { return validation.Struct(r) }

// GetSingleProvider looks a listing up by name, first address line and
// phone number together.
func (h *ProviderHandler) GetSingleProvider(c echo.Context, req *GetSingleProviderRequest) (database.Rows, error) {
	return h.providers.GetMultiInfo(c.Request().Context(),
		req.ProviderName, req.AddressLine1, req.PhoneNumber)
}

// ProviderIDRequest identifies a listing by id.
type ProviderIDRequest struct {
	ProviderID int `json:"providerId" validate:"required"`
}

func (r *ProviderIDRequest) Validate() error { return validation.Struct(r) }

// GetProvider returns a listing by id, active or not.
func (h *ProviderHandler) GetProvider(c echo.Context, req *ProviderIDRequest) (database.Rows, error) {
	return h.providers.GetByID(c.Request().Context(), req.ProviderID)
}

// EditProviderRequest is the POST /providers/EditProvider payload. Every
// mutable field is required because the edit is a full replace; ownership
// (username) is not editable.
type EditProviderRequest struct {
	ProviderID   int    `json:"providerId" validate:"required"`
	ProviderName string `json:"providerName" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	Zipcode      string `json:"zipcode" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required"`
	PhoneType    string `json:"phoneType" validate:"required"`
	Email        string `json:"email" validate:"required"`
}

func (r *EditProviderRequest) Validate() error { return validation.Struct(r) }

// EditProvider overwrites every mutable field of the listing.
func (h *ProviderHandler) EditProvider(c echo.Context, req *EditProviderRequest) (database.Rows, error) {
	return h.providers.Edit(c.Request().Context(), req.ProviderID, repository.ProviderParams{
		ProviderName: req.ProviderName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		Zipcode:      req.Zipcode,
		City:         req.City,
		State:        req.State,
		PhoneNumber:  req.PhoneNumber,
		PhoneType:    req.PhoneType,
		Email:        req.Email,
	})
}

// DeleteProvider deactivates the listing. The row is kept and stays
// reachable through GetProvider.
func (h *ProviderHandler) DeleteProvider(c echo.Context, req *ProviderIDRequest) (database.Rows, error) {
	return h.providers.SoftDelete(c.Request().Context(), req.ProviderID)
}
