// Package dialogue implements the conversational booking state
// machine.  One turn of input enters HandleTurn with the session's
// context, is dispatched to the handler for the current state, and
// produces the reply text plus the next state.  The engine performs
// no transport I/O of its own; inventory, ledger, catalog, utterance
// interpreter and event publisher are injected collaborators.
package dialogue

// State tags the position of a session within the booking dialogue.
type State string

// Dialogue states.  A session starts in StateGreeting.  StateFinished
// is soft-terminal: an affirmative answer there starts a fresh
// booking while keeping the customer's name and email.
//
// Seat entry, the yes/no on the booking summary and the post-booking
// "book again?" question are three distinct states rather than one
// flag-disambiguated state, so each handler's required context fields
// are enumerable from its state alone.
const (
	StateGreeting          State = "greeting"
	StateGetEmail          State = "get_email"
	StatePreferences       State = "preferences"
	StateInitial           State = "initial"
	StateMovieSelection    State = "movie_selection"
	StateTheaterSelection  State = "theater_selection"
	StateShowtimeSelection State = "showtime_selection"
	StateSeatSelection     State = "seat_selection"
	StateConfirmBooking    State = "confirm_booking"
	StateRebookDecision    State = "rebook_decision"
	StateFinished          State = "finished"
)

// PrefPhase tracks which preference question the preferences state is
// currently asking.
type PrefPhase string

// Preference collection phases, asked in order.
const (
	PrefGenres PrefPhase = "genres"
	PrefActors PrefPhase = "actors"
	PrefTimes  PrefPhase = "times"
)
