package handler

import (
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/server"
	"github.com/opendirectory/providerdir/internal/service"
)

// Handlers is a container for all handler instances.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Users     *UserHandler
	Providers *ProviderHandler
	Items     *ItemHandler
	Searches  *SearchHandler
	Forms     *FormHandler
}

// NewHandlers constructs the handler container from the app container, the
// repositories and the services.
func NewHandlers(s *server.Server, repos *repository.Repositories, services *service.Services) *Handlers {
	base := NewHandler(s)

	return &Handlers{
		Health:    NewHealthHandler(base),
		Auth:      NewAuthHandler(base, services.Auth),
		Users:     NewUserHandler(base, repos.Users),
		Providers: NewProviderHandler(base, repos.Providers, services.Search),
		Items:     NewItemHandler(base, repos.Items),
		Searches:  NewSearchHandler(base, services.Search),
		Forms:     NewFormHandler(base, repos.Items, services.Search),
	}
}
