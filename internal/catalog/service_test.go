package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// stubClient is a scripted remote catalog.
type stubClient struct {
	movies []model.Movie
	err    error
}

func (s *stubClient) Search(context.Context, string) ([]model.Movie, error) {
	return s.movies, s.err
}

func (s *stubClient) Details(_ context.Context, id string) (model.Movie, error) {
	if s.err != nil {
		return model.Movie{}, s.err
	}
	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, ErrNotFound
}

func seeded() *store.InventoryStore {
	return store.SeedDemo(time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC))
}

func TestServiceSearchPrefersRemote(t *testing.T) {
	remote := &stubClient{movies: []model.Movie{{ID: "tt1", Title: "Arrival"}}}
	svc := NewService(remote, seeded())

	movies, err := svc.Search(context.Background(), "arrival")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Arrival", movies[0].Title)
}

func TestServiceSearchFallsBackOnError(t *testing.T) {
	remote := &stubClient{err: errors.New("upstream down")}
	svc := NewService(remote, seeded())

	movies, err := svc.Search(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
}

func TestServiceSearchFallsBackOnEmpty(t *testing.T) {
	svc := NewService(&stubClient{}, seeded())

	movies, err := svc.Search(context.Background(), "dark")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Dark Knight", movies[0].Title)
}

func TestServiceSearchNilRemote(t *testing.T) {
	svc := NewService(nil, seeded())

	movies, err := svc.Search(context.Background(), "shawshank")
	require.NoError(t, err)
	require.Len(t, movies, 1)

	movies, err = svc.Search(context.Background(), "no such title")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestServiceDetails(t *testing.T) {
	remote := &stubClient{movies: []model.Movie{{ID: "tt1", Title: "Arrival"}}}
	svc := NewService(remote, seeded())

	m, err := svc.Details(context.Background(), "tt1")
	require.NoError(t, err)
	assert.Equal(t, "Arrival", m.Title)

	// Remote miss falls back to the local catalog.
	m, err = svc.Details(context.Background(), "tt1375666")
	require.NoError(t, err)
	assert.Equal(t, "Inception", m.Title)

	_, err = svc.Details(context.Background(), "tt0000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
