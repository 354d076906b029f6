package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

func TestRankByPreferences(t *testing.T) {
	movies := []model.Movie{
		{ID: "1", Title: "Quiet Drama", Genre: "Drama", Actors: "Nobody Known"},
		{ID: "2", Title: "Action Flick", Genre: "Action, Thriller", Actors: "Star One, Star Two"},
		{ID: "3", Title: "Action Star Vehicle", Genre: "Action", Actors: "Star One"},
	}
	prefs := model.UserPreferences{
		Genres: []string{"action", "thriller"},
		Actors: []string{"star one"},
	}

	ranked := RankByPreferences(movies, prefs)
	// Movie 2 scores 2+2+1, movie 3 scores 2+1, movie 1 scores 0.
	assert.Equal(t, []string{"2", "3", "1"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankByPreferencesIsStable(t *testing.T) {
	movies := []model.Movie{
		{ID: "a", Genre: "Comedy"},
		{ID: "b", Genre: "Comedy"},
		{ID: "c", Genre: "Comedy"},
	}
	ranked := RankByPreferences(movies, model.UserPreferences{Genres: []string{"comedy"}})
	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)
}

func TestRankByPreferencesKeepsZeroScores(t *testing.T) {
	movies := []model.Movie{{ID: "a", Genre: "Horror"}}
	ranked := RankByPreferences(movies, model.UserPreferences{Genres: []string{"comedy"}})
	assert.Len(t, ranked, 1)
}

func TestRankByPreferencesEmptyInput(t *testing.T) {
	assert.Empty(t, RankByPreferences(nil, model.UserPreferences{}))
}
