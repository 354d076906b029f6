package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/pricing"
	"github.com/iliyamo/movie-booking-assistant/internal/seating"
)

// trendingLimit caps the "show movies" listing.
const trendingLimit = 10

// Commands the initial state recognises besides free-text search.
var (
	listCommands      = map[string]bool{"what movies do you have": true, "show movies": true, "available movies": true, "list movies": true}
	recommendCommands = map[string]bool{"recommend": true, "suggestions": true, "what's good": true}
)

// handleInitial routes the customer's movie request: a listing
// command, a recommendation request, or a free-text catalog search
// with local fallback.
func (e *Engine) handleInitial(ctx context.Context, sc *Context, input string) (string, State) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	if listCommands[trimmed] {
		movies := e.trendingMovies()
		sc.AvailableMovies = movies
		return fmt.Sprintf(
			"Here are some popular movies currently showing:\n%s\n"+
				"Which one would you like to watch? (Enter the number or search for another movie)",
			movieList(movies, true),
		), StateMovieSelection
	}

	if recommendCommands[trimmed] {
		recs := e.recommendations(sc.UserID)
		if len(recs) > 0 {
			sc.AvailableMovies = recs
			return fmt.Sprintf(
				"Based on your preferences, here are some recommendations:\n%s\n"+
					"Which movie would you like to watch? (Enter the number or type a movie name to search)",
				movieList(recs, false),
			), StateMovieSelection
		}
	}

	movies, err := e.catalog.Search(ctx, input)
	if err != nil {
		// The composite catalog already falls back internally; an
		// error here means even the local lookup failed.  Stay put.
		return "I couldn't search for movies right now. Please try again.", StateInitial
	}
	if len(movies) > 0 {
		sc.AvailableMovies = movies
		return fmt.Sprintf(
			"I found these movies:\n%s%s\n"+
				"Which one would you like to watch? (Enter the number or search for another movie)",
			movieList(movies, true),
			e.preferenceHint(sc.UserID, movies),
		), StateMovieSelection
	}

	return "I couldn't find any movies matching your search. You can:\n" +
		"1. Try searching with a different movie name\n" +
		"2. Type 'show movies' to see what's available\n" +
		"3. Type 'recommend' for personalized suggestions\n" +
		"What would you like to do?", StateInitial
}

// handleMovieSelection consumes a 1-based index into the last shown
// movie list and presents the theaters.
func (e *Engine) handleMovieSelection(_ context.Context, sc *Context, input string) (string, State) {
	if len(sc.AvailableMovies) == 0 {
		return "Let's find a movie first. What would you like to watch?", StateInitial
	}
	idx, ok := parseIndex(input, len(sc.AvailableMovies))
	if !ok {
		return selectionError(input), StateMovieSelection
	}
	movie := sc.AvailableMovies[idx]
	sc.SelectedMovie = &movie

	theaters := e.inventory.ListTheaters()
	sc.AvailableTheaters = theaters
	var b strings.Builder
	for i, t := range theaters {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, t.Name, t.Location)
	}
	return fmt.Sprintf(
		"Great choice, %s! '%s' is playing at these theaters:\n%s\nWhich theater would you prefer? (Enter the number)",
		sc.CustomerName, movie.Title, b.String(),
	), StateTheaterSelection
}

// handleTheaterSelection consumes a theater index and presents the
// showtimes for the selected movie there.
func (e *Engine) handleTheaterSelection(_ context.Context, sc *Context, input string) (string, State) {
	if sc.SelectedMovie == nil || len(sc.AvailableTheaters) == 0 {
		return "Let's pick a movie first. What would you like to watch?", StateInitial
	}
	idx, ok := parseIndex(input, len(sc.AvailableTheaters))
	if !ok {
		return selectionError(input), StateTheaterSelection
	}
	theater := sc.AvailableTheaters[idx]
	sc.SelectedTheater = &theater

	showtimes, err := e.inventory.ListShowtimes(theater.ID, sc.SelectedMovie.ID)
	if err != nil || len(showtimes) == 0 {
		return "I couldn't find showtimes for that theater. Please choose another one.", StateTheaterSelection
	}
	sc.AvailableShowtimes = showtimes
	var b strings.Builder
	for i, st := range showtimes {
		fmt.Fprintf(&b, "%d. %s %s - %s\n", i+1, st.Date(), st.Time(), pricing.FormatCents(st.BasePriceCents))
	}
	return fmt.Sprintf(
		"Available showtimes at %s:\n%s\nWhich showtime would you prefer? (Enter the number)",
		theater.Name, b.String(),
	), StateShowtimeSelection
}

// handleShowtimeSelection consumes a showtime index, snapshots the
// seat map and asks for seat codes.
func (e *Engine) handleShowtimeSelection(_ context.Context, sc *Context, input string) (string, State) {
	if len(sc.AvailableShowtimes) == 0 {
		return "Let's pick a theater first. What would you like to watch?", StateInitial
	}
	idx, ok := parseIndex(input, len(sc.AvailableShowtimes))
	if !ok {
		return selectionError(input), StateShowtimeSelection
	}
	showtime := sc.AvailableShowtimes[idx]
	sc.SelectedShowtime = &showtime

	seats, err := e.inventory.SeatMap(showtime.ID)
	if err != nil {
		return "I couldn't load the seating map for that showtime. Please pick another showtime.", StateShowtimeSelection
	}
	sc.AvailableSeats = seats
	return fmt.Sprintf(
		"Here's the seating map:\n%s\n"+
			"Please enter your seat selections (e.g., 'A1 A2' for multiple seats), "+
			"or type 'suggest N' for the best seats for a group of N:",
		seating.FormatMap(seats),
	), StateSeatSelection
}

// trendingMovies maps the ledger's trending ranking back to movie
// records, falling back to the whole catalog when nothing has been
// booked yet.
func (e *Engine) trendingMovies() []model.Movie {
	var movies []model.Movie
	for _, id := range e.ledger.TrendingMovieIDs(trendingLimit) {
		if m, err := e.inventory.GetMovie(id); err == nil {
			movies = append(movies, m)
		}
	}
	if len(movies) == 0 {
		movies = e.inventory.ListMovies()
		if len(movies) > trendingLimit {
			movies = movies[:trendingLimit]
		}
	}
	return movies
}

// preferenceHint returns the 💡 nudge line when a found movie matches
// one of the user's favourite genres.
func (e *Engine) preferenceHint(userID string, movies []model.Movie) string {
	prefs := e.prefs.Get(userID)
	if len(prefs.Genres) == 0 {
		return ""
	}
	for _, m := range movies {
		genre := strings.ToLower(m.Genre)
		for _, g := range prefs.Genres {
			if strings.Contains(genre, g) {
				return fmt.Sprintf("\n💡 Based on your preferences, you might especially enjoy '%s'!", m.Title)
			}
		}
	}
	return ""
}

// movieList renders a numbered movie list, optionally with years.
func movieList(movies []model.Movie, withYear bool) string {
	var b strings.Builder
	for i, m := range movies {
		if withYear {
			fmt.Fprintf(&b, "%d. %s (%s) - %s\n", i+1, m.Title, m.Year, m.Genre)
		} else {
			fmt.Fprintf(&b, "%d. %s - %s\n", i+1, m.Title, m.Genre)
		}
	}
	return b.String()
}

// parseIndex converts a 1-based selection into a slice index,
// reporting false for non-numeric or out-of-range input.
func parseIndex(input string, n int) (int, bool) {
	sel, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || sel < 1 || sel > n {
		return 0, false
	}
	return sel - 1, true
}

// selectionError distinguishes "not a number" from "out of range" in
// the re-prompt.
func selectionError(input string) string {
	if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
		return "Please enter a valid number."
	}
	return "Invalid selection. Please choose a number from the list."
}
