package dialogue

import (
	"strings"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// Context is the per-session mutable state owned exclusively by the
// dialogue engine for the session's lifetime.  Each field is written
// by exactly one state and read by later ones; handlers fail closed
// with a clarifying prompt when a required field is missing rather
// than assuming an earlier state ran.  Selection lists
// (AvailableMovies and friends) are transient: populated by the state
// that presented them, consumed by the index the customer replies
// with.
type Context struct {
	UserID string
	State  State

	CustomerName  string
	CustomerEmail string

	PrefPhase PrefPhase
	Genres    []string
	Actors    []string

	AvailableMovies    []model.Movie
	SelectedMovie      *model.Movie
	AvailableTheaters  []model.Theater
	SelectedTheater    *model.Theater
	AvailableShowtimes []model.Showtime
	SelectedShowtime   *model.Showtime

	// AvailableSeats is the seat map snapshot shown to the customer.
	// It is display state only: availability is always re-checked
	// against the live inventory before anything is reserved.
	AvailableSeats map[string]model.SeatState
	SelectedSeats  []string
	TotalCents     uint32

	LastBookingID uint64
}

// NewContext returns a fresh session context in the greeting state.
// The user ID doubles as the preference and booking owner key.
func NewContext(userID string) *Context {
	return &Context{UserID: userID, State: StateGreeting}
}

// ClearSelection drops everything tied to the current booking attempt
// while keeping the customer's identity and preferences.  Used when a
// booking completes or is cancelled and the customer starts over.
func (c *Context) ClearSelection() {
	c.AvailableMovies = nil
	c.SelectedMovie = nil
	c.AvailableTheaters = nil
	c.SelectedTheater = nil
	c.AvailableShowtimes = nil
	c.SelectedShowtime = nil
	c.AvailableSeats = nil
	c.SelectedSeats = nil
	c.TotalCents = 0
}

// Reset returns the context to the initial greeting state, dropping
// identity, preferences and any in-flight selection.  Because seats
// are only reserved at explicit confirmation, resetting a session can
// never leak inventory holds.
func (c *Context) Reset() {
	*c = Context{UserID: c.UserID, State: StateGreeting}
}

// View is the read-only snapshot of a session exposed to hosts for
// sidebars and status displays.
type View struct {
	State         State  `json:"state"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Movie         string `json:"movie,omitempty"`
	Theater       string `json:"theater,omitempty"`
	ShowtimeID    string `json:"showtime_id,omitempty"`
	Seats         string `json:"seats,omitempty"`
	LastBookingID uint64 `json:"last_booking_id,omitempty"`
}

// Snapshot renders the context as a View.
func (c *Context) Snapshot() View {
	v := View{
		State:         c.State,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		Seats:         strings.Join(c.SelectedSeats, ", "),
		LastBookingID: c.LastBookingID,
	}
	if c.SelectedMovie != nil {
		v.Movie = c.SelectedMovie.Title
	}
	if c.SelectedTheater != nil {
		v.Theater = c.SelectedTheater.Name
	}
	if c.SelectedShowtime != nil {
		v.ShowtimeID = c.SelectedShowtime.ID
	}
	return v
}
