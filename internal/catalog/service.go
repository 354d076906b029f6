package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// Service combines the external catalog with the local seed catalog.
// The external side is optional and best-effort: when it errors or
// returns nothing, the local inventory answers instead, so a catalog
// outage can never dead-end a dialogue.  Service itself satisfies
// Client, so it can be handed to the engine like any other catalog.
type Service struct {
	remote Client
	local  *store.InventoryStore
}

// NewService builds a catalog service.  remote may be nil, in which
// case only the local catalog is consulted.
func NewService(remote Client, local *store.InventoryStore) *Service {
	return &Service{remote: remote, local: local}
}

// Search tries the external catalog first and falls back to a local
// title search on error or empty result.  Remote failures are logged
// and swallowed; the caller always gets whatever the local catalog
// can offer.
func (s *Service) Search(ctx context.Context, query string) ([]model.Movie, error) {
	if s.remote != nil {
		movies, err := s.remote.Search(ctx, query)
		if err != nil {
			log.Printf("catalog: remote search %q failed: %v", query, err)
		} else if len(movies) > 0 {
			return movies, nil
		}
	}
	return s.local.SearchMovies(query), nil
}

// Details resolves a movie ID, preferring the external record and
// falling back to the local catalog.
func (s *Service) Details(ctx context.Context, id string) (model.Movie, error) {
	if s.remote != nil {
		m, err := s.remote.Details(ctx, id)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("catalog: remote details %q failed: %v", id, err)
		}
	}
	m, err := s.local.GetMovie(id)
	if err != nil {
		return model.Movie{}, ErrNotFound
	}
	return m, nil
}
