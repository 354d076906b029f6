package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/movie-booking-assistant/internal/catalog"
	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// recommendationLimit caps how many titles the post-preferences
// recommendation list shows.
const recommendationLimit = 5

// handlePreferences walks the genre → actor → time interview.  Each
// answer is a comma-separated list; the final answer persists the
// whole profile and produces an immediate recommendation list.
func (e *Engine) handlePreferences(_ context.Context, sc *Context, input string) (string, State) {
	switch sc.PrefPhase {
	case PrefGenres:
		sc.Genres = splitList(input)
		sc.PrefPhase = PrefActors
		return "Great choices! Who are some of your favorite actors? (Separate names with commas)", StatePreferences
	case PrefActors:
		sc.Actors = splitList(input)
		sc.PrefPhase = PrefTimes
		return "What times do you usually prefer to watch movies? " +
			"(morning, afternoon, evening, or night - select multiple if applicable)", StatePreferences
	case PrefTimes:
		prefs := model.UserPreferences{
			Genres:         sc.Genres,
			Actors:         sc.Actors,
			PreferredTimes: splitList(input),
		}
		e.prefs.Update(sc.UserID, prefs)

		recText := ""
		if recs := e.recommendations(sc.UserID); len(recs) > 0 {
			var b strings.Builder
			b.WriteString("\nBased on your preferences, you might enjoy these movies:\n")
			for i, m := range recs {
				fmt.Fprintf(&b, "%d. %s - %s\n", i+1, m.Title, m.Genre)
			}
			recText = b.String()
		}
		return fmt.Sprintf("Thanks for sharing your preferences!%s\n\nWhat movie would you like to watch today?", recText), StateInitial
	default:
		// Phase was never initialised; restart the interview.
		sc.PrefPhase = PrefGenres
		return "What kinds of movies do you enjoy? (You can list multiple genres, " +
			"separated by commas, e.g., 'action, comedy, drama')", StatePreferences
	}
}

// recommendations ranks the local catalog against the user's saved
// preferences and returns the top slice.
func (e *Engine) recommendations(userID string) []model.Movie {
	ranked := catalog.RankByPreferences(e.inventory.ListMovies(), e.prefs.Get(userID))
	if len(ranked) > recommendationLimit {
		ranked = ranked[:recommendationLimit]
	}
	return ranked
}

// splitList parses a comma-separated answer, dropping empty entries.
func splitList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if cleaned := strings.TrimSpace(part); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
