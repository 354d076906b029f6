package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/seating"
)

// InventoryStore is the in-memory catalog of movies, theaters,
// showtimes and per-showtime seat maps.  Reference data (movies,
// theaters, showtimes) is written only while seeding, before the
// store is shared; seat maps are mutated concurrently by all sessions
// and are guarded by one mutex per showtime.  Seat state can only be
// changed through Reserve and Release, never directly, which is what
// upholds the disjointness invariant: no seat is ever part of two
// bookings.
type InventoryStore struct {
	mu        sync.RWMutex
	movies    map[string]model.Movie
	movieIDs  []string // insertion order, for stable listings
	theaters  []model.Theater
	showtimes map[string][]model.Showtime // theater ID → showtimes
	seatMaps  map[string]*seatMap         // showtime ID → seats
}

// seatMap carries one showtime's seats together with the mutex that
// makes multi-seat transitions atomic.
type seatMap struct {
	mu    sync.Mutex
	seats map[string]model.SeatState
}

// NewInventoryStore returns an empty store.  Callers seed it with
// AddMovie/AddTheater/AddShowtime before serving traffic; see
// SeedDemo for the default catalog.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		movies:    make(map[string]model.Movie),
		showtimes: make(map[string][]model.Showtime),
		seatMaps:  make(map[string]*seatMap),
	}
}

// AddMovie inserts a movie into the local catalog.  Re-adding an ID
// overwrites the entry but keeps its listing position.
func (s *InventoryStore) AddMovie(m model.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[m.ID]; !ok {
		s.movieIDs = append(s.movieIDs, m.ID)
	}
	s.movies[m.ID] = m
}

// AddTheater inserts a theater.
func (s *InventoryStore) AddTheater(t model.Theater) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theaters = append(s.theaters, t)
}

// AddShowtime inserts a showtime and creates its all-available 8×10
// seat map.
func (s *InventoryStore) AddShowtime(st model.Showtime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showtimes[st.TheaterID] = append(s.showtimes[st.TheaterID], st)
	seats := make(map[string]model.SeatState, len(seating.Rows)*seating.Cols)
	for _, row := range seating.Rows {
		for col := 1; col <= seating.Cols; col++ {
			seats[fmt.Sprintf("%c%d", row, col)] = model.SeatAvailable
		}
	}
	s.seatMaps[st.ID] = &seatMap{seats: seats}
}

// ListMovies returns the local catalog in seeding order.
func (s *InventoryStore) ListMovies() []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Movie, 0, len(s.movieIDs))
	for _, id := range s.movieIDs {
		out = append(out, s.movies[id])
	}
	return out
}

// GetMovie looks up a movie by catalog ID.
func (s *InventoryStore) GetMovie(id string) (model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, nil
}

// SearchMovies returns local catalog movies whose title contains the
// query, case-insensitively, in seeding order.  This is the fallback
// the dialogue uses when the external catalog returns nothing.
func (s *InventoryStore) SearchMovies(query string) []model.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Movie
	for _, id := range s.movieIDs {
		if m := s.movies[id]; strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

// ListTheaters returns all theaters in seeding order.
func (s *InventoryStore) ListTheaters() []model.Theater {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Theater, len(s.theaters))
	copy(out, s.theaters)
	return out
}

// ListShowtimes returns the showtimes at a theater screening the
// given movie.  When the movie has no dedicated screenings at that
// theater (for example a title found only in the external catalog),
// every showtime at the theater is returned instead so the customer
// always has something to pick; an unknown theater is an error.
func (s *InventoryStore) ListShowtimes(theaterID, movieID string) ([]model.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, ok := s.showtimes[theaterID]
	if !ok {
		return nil, ErrTheaterNotFound
	}
	var matched []model.Showtime
	for _, st := range all {
		if st.MovieID == movieID {
			matched = append(matched, st)
		}
	}
	if len(matched) == 0 {
		matched = make([]model.Showtime, len(all))
		copy(matched, all)
	}
	return matched, nil
}

// GetShowtime looks up a showtime by ID.
func (s *InventoryStore) GetShowtime(id string) (model.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sts := range s.showtimes {
		for _, st := range sts {
			if st.ID == id {
				return st, nil
			}
		}
	}
	return model.Showtime{}, ErrShowtimeNotFound
}

// SeatMap returns a consistent snapshot of a showtime's seat states.
// The returned map is a copy; mutating it has no effect on the store.
func (s *InventoryStore) SeatMap(showtimeID string) (map[string]model.SeatState, error) {
	sm, err := s.seats(showtimeID)
	if err != nil {
		return nil, err
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	out := make(map[string]model.SeatState, len(sm.seats))
	for code, state := range sm.seats {
		out[code] = state
	}
	return out, nil
}

// Reserve atomically transitions every seat in seatCodes from
// available to booked.  The check and the transition happen under the
// showtime's mutex as one indivisible step: either all seats flip, or
// none do and a *SeatConflictError names the seats that were not
// available.  Two concurrent calls with overlapping seat sets can
// therefore never both succeed.
func (s *InventoryStore) Reserve(showtimeID string, seatCodes []string) error {
	if len(seatCodes) == 0 {
		return ErrEmptySeatSet
	}
	sm, err := s.seats(showtimeID)
	if err != nil {
		return err
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	var conflicts []string
	for _, code := range seatCodes {
		if sm.seats[code] != model.SeatAvailable {
			conflicts = append(conflicts, code)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &SeatConflictError{ShowtimeID: showtimeID, Seats: conflicts}
	}
	for _, code := range seatCodes {
		sm.seats[code] = model.SeatBooked
	}
	return nil
}

// Release rolls back a reservation, returning the given seats to
// available.  It exists so a failed booking after a successful
// Reserve, or a host-driven cancellation, never leaks seats as
// permanently taken.  Releasing a seat that is not booked is a no-op.
func (s *InventoryStore) Release(showtimeID string, seatCodes []string) error {
	sm, err := s.seats(showtimeID)
	if err != nil {
		return err
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for _, code := range seatCodes {
		if sm.seats[code] == model.SeatBooked {
			sm.seats[code] = model.SeatAvailable
		}
	}
	return nil
}

func (s *InventoryStore) seats(showtimeID string) (*seatMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sm, ok := s.seatMaps[showtimeID]
	if !ok {
		return nil, ErrShowtimeNotFound
	}
	return sm, nil
}
