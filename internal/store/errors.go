// Package store holds the shared in-memory state of the booking
// system: the seat inventory, the booking ledger and user
// preferences.  These are the only resources shared across sessions;
// every mutation goes through an atomic store operation so that
// concurrent sessions can never corrupt seat state.  Sentinel errors
// let the dialogue layer distinguish failure kinds with errors.Is and
// errors.As.
package store

import (
	"fmt"
	"strings"
)

// ErrMovieNotFound is returned when a movie ID is not in the local catalog.
var ErrMovieNotFound = fmt.Errorf("movie not found")

// ErrTheaterNotFound is returned when a theater ID is unknown.
var ErrTheaterNotFound = fmt.Errorf("theater not found")

// ErrShowtimeNotFound is returned when a showtime ID is unknown.
var ErrShowtimeNotFound = fmt.Errorf("showtime not found")

// ErrBookingNotFound is returned by the ledger for an unknown booking ID.
var ErrBookingNotFound = fmt.Errorf("booking not found")

// ErrEmptySeatSet is returned when a reservation or booking is
// attempted with no seats.  This indicates a caller bug, never valid
// user input, so handlers must treat it as fatal rather than re-prompt.
var ErrEmptySeatSet = fmt.Errorf("empty seat set")

// SeatConflictError reports that an all-or-nothing reservation failed
// because one or more requested seats were not available.  No seat
// state was changed.  Seats carries exactly the conflicting codes so
// the dialogue can name them in the re-prompt.
type SeatConflictError struct {
	ShowtimeID string
	Seats      []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats unavailable for showtime %s: %s", e.ShowtimeID, strings.Join(e.Seats, ", "))
}
