package service

import (
	"context"
	"testing"

	"github.com/opendirectory/providerdir/internal/database"
)

// fakeSearcher records which lookup variant was invoked and with what
// argument, so each service method can be checked against its routine.
type fakeSearcher struct {
	called string
	arg    string
}

func (f *fakeSearcher) record(name, arg string) (database.Rows, error) {
	f.called = name
	f.arg = arg
	return database.Rows{{"provider_name": arg}}, nil
}

func (f *fakeSearcher) SearchByName(ctx context.Context, providerName string) (database.Rows, error) {
	return f.record("SearchByName", providerName)
}
func (f *fakeSearcher) GetByName(ctx context.Context, providerName string) (database.Rows, error) {
	return f.record("GetByName", providerName)
}
func (f *fakeSearcher) ByCity(ctx context.Context, city string) (database.Rows, error) {
	return f.record("ByCity", city)
}
func (f *fakeSearcher) SearchByCity(ctx context.Context, city string) (database.Rows, error) {
	return f.record("SearchByCity", city)
}
func (f *fakeSearcher) ByState(ctx context.Context, state string) (database.Rows, error) {
	return f.record("ByState", state)
}
func (f *fakeSearcher) ByItem(ctx context.Context, item string) (database.Rows, error) {
	return f.record("ByItem", item)
}

func TestSearchServiceRouting(t *testing.T) {
	tests := []struct {
		name       string
		invoke     func(s *SearchService) (database.Rows, error)
		wantCalled string
		wantArg    string
	}{
		{
			name: "name contains",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByNameContains(context.Background(), "food bank")
			},
			wantCalled: "SearchByName",
			wantArg:    "food bank",
		},
		{
			name: "name exact",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByNameExact(context.Background(), "Food Bank of Alaska")
			},
			wantCalled: "GetByName",
			wantArg:    "Food Bank of Alaska",
		},
		{
			name: "city exact",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByCityExact(context.Background(), "Anchorage")
			},
			wantCalled: "ByCity",
			wantArg:    "Anchorage",
		},
		{
			name: "city contains",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByCityContains(context.Background(), "Anchor")
			},
			wantCalled: "SearchByCity",
			wantArg:    "Anchor",
		},
		{
			name: "state",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByState(context.Background(), "AK")
			},
			wantCalled: "ByState",
			wantArg:    "AK",
		},
		{
			name: "item",
			invoke: func(s *SearchService) (database.Rows, error) {
				return s.ByItem(context.Background(), "winter coat")
			},
			wantCalled: "ByItem",
			wantArg:    "winter coat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{}
			svc := NewSearchService(searcher)

			rows, err := tt.invoke(svc)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("rows = %d, want 1", len(rows))
			}
			if searcher.called != tt.wantCalled {
				t.Errorf("called %s, want %s", searcher.called, tt.wantCalled)
			}
			if searcher.arg != tt.wantArg {
				t.Errorf("arg = %q, want %q", searcher.arg, tt.wantArg)
			}
		})
	}
}
