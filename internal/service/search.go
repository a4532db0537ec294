package service

import (
	"context"

	"github.com/opendirectory/providerdir/internal/database"
)

// ProviderSearcher is the slice of the provider repository the search
// service depends on.
type ProviderSearcher interface {
	SearchByName(ctx context.Context, providerName string) (database.Rows, error)
	GetByName(ctx context.Context, providerName string) (database.Rows, error)
	ByCity(ctx context.Context, city string) (database.Rows, error)
	SearchByCity(ctx context.Context, city string) (database.Rows, error)
	ByState(ctx context.Context, state string) (database.Rows, error)
	ByItem(ctx context.Context, item string) (database.Rows, error)
}

// SearchService is the single search capability behind the /providers
// search endpoints, /searches and the /forms search routes. The route
// groups differ only in which lookup variant they historically called, so
// each variant is exposed once here.
type SearchService struct {
	providers ProviderSearcher
}

func NewSearchService(providers ProviderSearcher) *SearchService {
	return &SearchService{providers: providers}
}

// ByNameContains matches providers whose name contains the filter.
func (s *SearchService) ByNameContains(ctx context.Context, providerName string) (database.Rows, error) {
	return s.providers.SearchByName(ctx, providerName)
}

// ByNameExact matches providers by exact (case-insensitive) name.
func (s *SearchService) ByNameExact(ctx context.Context, providerName string) (database.Rows, error) {
	return s.providers.GetByName(ctx, providerName)
}

// ByCityExact matches providers in exactly the given city.
func (s *SearchService) ByCityExact(ctx context.Context, city string) (database.Rows, error) {
	return s.providers.ByCity(ctx, city)
}

// ByCityContains matches providers whose city contains the filter.
func (s *SearchService) ByCityContains(ctx context.Context, city string) (database.Rows, error) {
	return s.providers.SearchByCity(ctx, city)
}

// ByState matches providers in the given state.
func (s *SearchService) ByState(ctx context.Context, state string) (database.Rows, error) {
	return s.providers.ByState(ctx, state)
}

// ByItem matches providers offering an item matching the filter.
func (s *SearchService) ByItem(ctx context.Context, item string) (database.Rows, error) {
	return s.providers.ByItem(ctx, item)
}
