package store

import (
	"strings"
	"sync"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// PreferenceStore keeps per-user movie preferences.  Writes are
// last-write-wins and only happen through the dialogue's preference
// phase; reads happen on every recommendation.  A user without saved
// preferences gets the zero profile with medium price sensitivity.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs map[string]model.UserPreferences
}

// NewPreferenceStore returns an empty preference store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{prefs: make(map[string]model.UserPreferences)}
}

// Get returns the stored preferences for a user, defaulting the price
// sensitivity when nothing has been saved yet.
func (p *PreferenceStore) Get(userID string) model.UserPreferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if prefs, ok := p.prefs[userID]; ok {
		return prefs
	}
	return model.UserPreferences{PriceSensitivity: "medium"}
}

// Update normalises and saves a user's preferences, replacing any
// previous profile.  List entries are trimmed and lower-cased; empty
// entries are dropped.
func (p *PreferenceStore) Update(userID string, prefs model.UserPreferences) {
	prefs.Genres = normalise(prefs.Genres)
	prefs.Actors = normalise(prefs.Actors)
	prefs.PreferredTimes = normalise(prefs.PreferredTimes)
	if prefs.PriceSensitivity == "" {
		prefs.PriceSensitivity = "medium"
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefs[userID] = prefs
}

func normalise(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if cleaned := strings.ToLower(strings.TrimSpace(it)); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
