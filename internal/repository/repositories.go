package repository

import (
	"github.com/opendirectory/providerdir/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Providers   *ProviderRepository
	Items       *ItemRepository
	Users       *UserRepository
	Credentials *CredentialRepository
}

// NewRepositories constructs the repository container from the shared
// database pool on the app container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Providers:   NewProviderRepository(s.DB),
		Items:       NewItemRepository(s.DB),
		Users:       NewUserRepository(s.DB),
		Credentials: NewCredentialRepository(s.DB),
	}
}
