package repository

import (
	"context"

	"github.com/opendirectory/providerdir/internal/database"
)

// ProviderRepository invokes the provider stored routines.
type ProviderRepository struct {
	db *database.Database
}

func NewProviderRepository(db *database.Database) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// ProviderParams carries the full field set of a provider listing. Edit is
// full-replace: every mutable column is overwritten from these fields.
type ProviderParams struct {
	ProviderName string
	Username     string
	AddressLine1 string
	AddressLine2 string
	Zipcode      string
	City         string
	State        string
	PhoneNumber  string
	PhoneType    string
	Email        string
}

// addressLine2 returns the second address line as a routine argument,
// coalescing the empty string to NULL.
func (p ProviderParams) addressLine2() any {
	if p.AddressLine2 == "" {
		return nil
	}
	return p.AddressLine2
}

// List returns all active providers.
func (r *ProviderRepository) List(ctx context.Context) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_providers")
}

// Count returns the active provider count as a single-row result set.
func (r *ProviderRepository) Count(ctx context.Context) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_providers_count")
}

// ListPage returns one page of active providers. Pagination is owned by
// the routine; start and amount are forwarded untouched.
func (r *ProviderRepository) ListPage(ctx context.Context, start, amount int) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_limited_providers", start, amount)
}

// SearchByName returns active providers whose name contains the filter.
func (r *ProviderRepository) SearchByName(ctx context.Context, providerName string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_search_providers_name", providerName)
}

// GetByName returns active providers matching the name exactly.
func (r *ProviderRepository) GetByName(ctx context.Context, providerName string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_provider_by_name", providerName)
}

// ByCity returns active providers in the given city (exact match).
func (r *ProviderRepository) ByCity(ctx context.Context, city string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_providers_city", city)
}

// SearchByCity returns active providers whose city contains the filter.
func (r *ProviderRepository) SearchByCity(ctx context.Context, city string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_search_providers_city", city)
}

// ByState returns active providers in the given state.
func (r *ProviderRepository) ByState(ctx context.Context, state string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_providers_state", state)
}

// ByItem returns active providers offering an item matching the filter.
func (r *ProviderRepository) ByItem(ctx context.Context, item string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_providers_item", item)
}

// Create inserts a new active provider listing and returns its id.
func (r *ProviderRepository) Create(ctx context.Context, p ProviderParams) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_create_new_listing",
		p.ProviderName, p.Username, p.AddressLine1, p.addressLine2(),
		p.Zipcode, p.City, p.State, true,
		p.PhoneNumber, p.PhoneType, p.Email)
}

// GetMultiInfo looks a provider up by name, first address line and phone.
func (r *ProviderRepository) GetMultiInfo(ctx context.Context, providerName, addressLine1, phoneNumber string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_providers_multi_info", providerName, addressLine1, phoneNumber)
}

// GetByID returns a provider by id, active or not. Deactivated providers
// stay retrievable by direct lookup.
func (r *ProviderRepository) GetByID(ctx context.Context, providerID int) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_provider_by_id", providerID)
}

// Edit overwrites every mutable field of the provider (full replace).
func (r *ProviderRepository) Edit(ctx context.Context, providerID int, p ProviderParams) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_edit_provider",
		providerID, p.ProviderName, p.AddressLine1, p.addressLine2(),
		p.Zipcode, p.City, p.State, true,
		p.PhoneNumber, p.PhoneType, p.Email)
}

// SoftDelete flips the provider's active flag; the row is never removed.
func (r *ProviderRepository) SoftDelete(ctx context.Context, providerID int) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_soft_delete_provider", providerID)
}
