package repository

import (
	"context"

	"github.com/opendirectory/providerdir/internal/database"
)

// CredentialRepository performs the single-row password hash lookup used by
// the credential verifier. It is the only code path on which the stored
// hash travels, and the hash goes no further than the auth service.
type CredentialRepository struct {
	db *database.Database
}

func NewCredentialRepository(db *database.Database) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// GetPasswordHash returns the stored bcrypt hash for username.
// A missing user surfaces as pgx.ErrNoRows.
func (r *CredentialRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	if err := r.db.CallRow(ctx, "sp_get_password_with_username", &hash, username); err != nil {
		return "", err
	}
	return hash, nil
}
