package repository

import (
	"context"

	"github.com/opendirectory/providerdir/internal/database"
)

// UserRepository invokes the person stored routines. Rows returned here
// never include the password column; the routines project it away.
type UserRepository struct {
	db *database.Database
}

func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new person. passwordHash must already be hashed; this
// layer never sees plaintext. A duplicate username surfaces as a unique
// violation from the routine.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash, firstName, lastName, email, occupation, roleType string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_create_new_user",
		username, passwordHash, firstName, lastName, email, occupation, roleType)
}

// GetByName returns the person's profile fields.
func (r *UserRepository) GetByName(ctx context.Context, username string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_get_user_by_name", username)
}

// EditByName overwrites the person's profile fields (full replace).
func (r *UserRepository) EditByName(ctx context.Context, username, firstName, lastName, email, occupation string) (database.Rows, error) {
	return r.db.CallRows(ctx, "sp_edit_user_by_name",
		username, firstName, lastName, email, occupation)
}
