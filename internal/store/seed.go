package store

import (
	"fmt"
	"time"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// DefaultBasePriceCents is the seeded base ticket price ($12.99).
const DefaultBasePriceCents uint32 = 1299

// SeedDemo returns an inventory store populated with the demo
// catalog: three movies, three theaters and four showtimes per
// theater starting hourly from now, rotating through the movies.
// Every seat map starts fully available.
func SeedDemo(now time.Time) *InventoryStore {
	inv := NewInventoryStore()
	movies := []model.Movie{
		{
			ID:       "tt1375666",
			Title:    "Inception",
			Year:     "2010",
			Genre:    "Action, Adventure, Sci-Fi",
			Director: "Christopher Nolan",
			Actors:   "Leonardo DiCaprio, Joseph Gordon-Levitt, Ellen Page",
			Plot:     "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Rating:   "8.8",
		},
		{
			ID:       "tt0468569",
			Title:    "The Dark Knight",
			Year:     "2008",
			Genre:    "Action, Crime, Drama",
			Director: "Christopher Nolan",
			Actors:   "Christian Bale, Heath Ledger, Aaron Eckhart",
			Plot:     "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			Rating:   "9.0",
		},
		{
			ID:       "tt0111161",
			Title:    "The Shawshank Redemption",
			Year:     "1994",
			Genre:    "Drama",
			Director: "Frank Darabont",
			Actors:   "Tim Robbins, Morgan Freeman",
			Plot:     "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Rating:   "9.3",
		},
	}
	for _, m := range movies {
		inv.AddMovie(m)
	}

	theaters := []model.Theater{
		{ID: "th1", Name: "Cinema City", Location: "Downtown"},
		{ID: "th2", Name: "Movieplex", Location: "Westside"},
		{ID: "th3", Name: "Star Cinema", Location: "Eastside"},
	}
	for _, t := range theaters {
		inv.AddTheater(t)
	}

	for _, t := range theaters {
		for i := 0; i < 4; i++ {
			inv.AddShowtime(model.Showtime{
				ID:             fmt.Sprintf("st_%s_%d", t.ID, i),
				TheaterID:      t.ID,
				MovieID:        movies[i%len(movies)].ID,
				StartsAt:       now.UTC().Add(time.Duration(i) * time.Hour),
				BasePriceCents: DefaultBasePriceCents,
			})
		}
	}
	return inv
}
