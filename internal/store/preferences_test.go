package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

func TestPreferenceStoreDefaults(t *testing.T) {
	p := NewPreferenceStore()
	prefs := p.Get("nobody")
	assert.Empty(t, prefs.Genres)
	assert.Equal(t, "medium", prefs.PriceSensitivity)
}

func TestPreferenceStoreUpdateNormalises(t *testing.T) {
	p := NewPreferenceStore()
	p.Update("u1", model.UserPreferences{
		Genres: []string{"  Action ", "SCI-FI"},
		Actors: []string{"Leonardo DiCaprio"},
	})

	prefs := p.Get("u1")
	assert.Equal(t, []string{"action", "sci-fi"}, prefs.Genres)
	assert.Equal(t, []string{"leonardo dicaprio"}, prefs.Actors)

	// Updates replace the whole profile.
	p.Update("u1", model.UserPreferences{Genres: []string{"drama"}})
	assert.Equal(t, []string{"drama"}, p.Get("u1").Genres)
	assert.Empty(t, p.Get("u1").Actors)
}
