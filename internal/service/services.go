package service

import (
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/server"
)

type Services struct {
	Auth   *AuthService
	Search *SearchService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s.Logger, repos.Credentials, repos.Users, s.Job.Client)
	searchService := NewSearchService(repos.Providers)

	return &Services{
		Auth:   authService,
		Search: searchService,
	}, nil
}
