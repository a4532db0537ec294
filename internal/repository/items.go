package repository

import (
	"context"

	"github.com/opendirectory/providerdir/internal/database"
)

// ItemRepository invokes the item stored routines.
type ItemRepository struct {
	db *database.Database
}

func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListPage returns one page of active items. providerID is optional; nil
// pages across all providers.
func (r *ItemRepository) ListPage(ctx context.Context, providerID *int, start, amount int) (database.Rows, error) {
	var pid any
	if providerID != nil {
		pid = *providerID
	}
	return r.db.CallRows(ctx, "sp_view_items", pid, start, amount)
}

// ByProvider returns the active items of one provider.
func (r *ItemRepository) ByProvider(ctx context.Context, providerID int) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_items_by_provider", providerID)
}

// ByID returns an item by id, active or not.
func (r *ItemRepository) ByID(ctx context.Context, itemID int) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_view_items_by_id", itemID)
}

// Create inserts a one-off item and returns its id.
func (r *ItemRepository) Create(ctx context.Context, providerID int, username, itemName, amount string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_create_new_item", providerID, username, itemName, amount)
}

// CreateRecurring inserts an item with a recurrence interval.
func (r *ItemRepository) CreateRecurring(ctx context.Context, providerID int, username, itemName, amount string, recurring bool, recurringTime string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_create_new_item", providerID, username, itemName, amount, recurring, recurringTime)
}

// UpdateAll overwrites the item's mutable fields (full replace).
func (r *ItemRepository) UpdateAll(ctx context.Context, itemID int, username, itemName, amount string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_update_item_all", itemID, username, itemName, amount)
}

// Deactivate flips the item's active flag for the owning username.
func (r *ItemRepository) Deactivate(ctx context.Context, itemID int, username string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_deactivate_item", itemID, username)
}
