package catalog

import (
	"sort"
	"strings"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// RankByPreferences orders movies by how well they match a user's
// preferences: +2 per matching genre, +1 per matching actor.
// Matching is case-insensitive on the comma-separated catalog fields.
// The sort is stable, so equally scored movies keep their incoming
// order, and zero-score movies stay in the list: this is a ranking,
// not a filter.
func RankByPreferences(movies []model.Movie, prefs model.UserPreferences) []model.Movie {
	type scored struct {
		movie model.Movie
		score int
	}
	ranked := make([]scored, 0, len(movies))
	for _, m := range movies {
		s := 0
		for _, genre := range splitField(m.Genre) {
			if contains(prefs.Genres, genre) {
				s += 2
			}
		}
		for _, actor := range splitField(m.Actors) {
			if contains(prefs.Actors, actor) {
				s++
			}
		}
		ranked = append(ranked, scored{movie: m, score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	out := make([]model.Movie, len(ranked))
	for i, r := range ranked {
		out[i] = r.movie
	}
	return out
}

func splitField(field string) []string {
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if cleaned := strings.ToLower(strings.TrimSpace(p)); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
