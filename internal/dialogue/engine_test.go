package dialogue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-booking-assistant/internal/catalog"
	"github.com/iliyamo/movie-booking-assistant/internal/dialogue"
	"github.com/iliyamo/movie-booking-assistant/internal/interpret"
	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/queue"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// capturedEvents records booking events instead of publishing them.
type capturedEvents struct {
	events []queue.BookingConfirmedEvent
}

func (c *capturedEvents) BookingConfirmed(_ context.Context, ev queue.BookingConfirmedEvent) {
	c.events = append(c.events, ev)
}

// panicClient simulates a collaborator blowing up mid-turn.
type panicClient struct{}

func (panicClient) Search(context.Context, string) ([]model.Movie, error) { panic("catalog down") }
func (panicClient) Details(context.Context, string) (model.Movie, error) { panic("catalog down") }

type fixture struct {
	engine *dialogue.Engine
	inv    *store.InventoryStore
	ledger *store.Ledger
	events *capturedEvents
}

// newFixture seeds the stores on a Wednesday so prices carry no
// weekend markup, and wires an engine with no external catalog.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	inv := store.SeedDemo(time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC))
	ledger := store.NewLedger(inv)
	events := &capturedEvents{}
	engine := dialogue.New(
		inv, ledger, store.NewPreferenceStore(),
		catalog.NewService(nil, inv),
		interpret.Heuristic{}, events,
	)
	return &fixture{engine: engine, inv: inv, ledger: ledger, events: events}
}

// turn runs one turn and asserts the state the session lands in.
func turn(t *testing.T, f *fixture, sc *dialogue.Context, input string, want dialogue.State) string {
	t.Helper()
	reply := f.engine.HandleTurn(context.Background(), sc, input)
	require.Equal(t, want, sc.State, "after input %q", input)
	return reply
}

func TestFullBookingConversation(t *testing.T) {
	f := newFixture(t)
	sc := dialogue.NewContext("sess1")

	reply := turn(t, f, sc, "Hi, I am alice", dialogue.StateGetEmail)
	assert.Contains(t, reply, "Nice to meet you, Alice!")

	reply = turn(t, f, sc, "not an address", dialogue.StateGetEmail)
	assert.Contains(t, reply, "valid email address")

	reply = turn(t, f, sc, "my email is Alice@Example.com", dialogue.StatePreferences)
	assert.Contains(t, reply, "Thank you, Alice!")
	assert.Contains(t, reply, "kinds of movies")

	reply = turn(t, f, sc, "action, drama", dialogue.StatePreferences)
	assert.Contains(t, reply, "favorite actors")

	reply = turn(t, f, sc, "Leonardo DiCaprio", dialogue.StatePreferences)
	assert.Contains(t, reply, "What times")

	reply = turn(t, f, sc, "evening", dialogue.StateInitial)
	assert.Contains(t, reply, "Thanks for sharing your preferences!")
	assert.Contains(t, reply, "you might enjoy these movies")

	reply = turn(t, f, sc, "show movies", dialogue.StateMovieSelection)
	assert.Contains(t, reply, "1. Inception (2010)")
	assert.Contains(t, reply, "The Shawshank Redemption")

	reply = turn(t, f, sc, "not a number", dialogue.StateMovieSelection)
	assert.Contains(t, reply, "valid number")

	reply = turn(t, f, sc, "1", dialogue.StateTheaterSelection)
	assert.Contains(t, reply, "Great choice, Alice!")
	assert.Contains(t, reply, "Cinema City (Downtown)")

	reply = turn(t, f, sc, "99", dialogue.StateTheaterSelection)
	assert.Contains(t, reply, "Invalid selection")

	reply = turn(t, f, sc, "1", dialogue.StateShowtimeSelection)
	assert.Contains(t, reply, "Available showtimes at Cinema City")
	assert.Contains(t, reply, "$12.99")

	reply = turn(t, f, sc, "1", dialogue.StateSeatSelection)
	assert.Contains(t, reply, "🎬 SCREEN HERE 🎬")
	assert.Contains(t, reply, "suggest N")

	reply = turn(t, f, sc, "suggest 2", dialogue.StateSeatSelection)
	assert.Contains(t, reply, "How about D1 D2?")

	reply = turn(t, f, sc, "A1 A99", dialogue.StateSeatSelection)
	assert.Contains(t, reply, "Invalid seat format")

	reply = turn(t, f, sc, "A1 A2", dialogue.StateConfirmBooking)
	assert.Contains(t, reply, "Booking Summary for Alice")
	assert.Contains(t, reply, "Seats: A1, A2")
	assert.Contains(t, reply, "Total Price: $38.98") // two premium seats on a weekday

	reply = turn(t, f, sc, "maybe", dialogue.StateConfirmBooking)
	assert.Contains(t, reply, "'yes' or 'no'")

	reply = turn(t, f, sc, "yes", dialogue.StateRebookDecision)
	assert.Contains(t, reply, "🎫 Booking Confirmation")
	assert.Contains(t, reply, "Booking ID: 1")
	assert.Contains(t, reply, "Movie: Inception")
	assert.Contains(t, reply, "Total Price: $38.98")
	assert.Contains(t, reply, "book another movie?")

	// The booking landed in the ledger, the seats flipped and the
	// event went out.
	booking, err := f.ledger.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, booking.Seats)
	seats, err := f.inv.SeatMap(booking.ShowtimeID)
	require.NoError(t, err)
	assert.Equal(t, model.SeatBooked, seats["A1"])
	require.Len(t, f.events.events, 1)
	assert.Equal(t, uint64(1), f.events.events[0].BookingID)
	assert.Equal(t, "Inception", f.events.events[0].MovieTitle)

	reply = turn(t, f, sc, "no", dialogue.StateFinished)
	assert.Contains(t, reply, "Thank you for using our service, Alice!")
	assert.Contains(t, reply, "alice@example.com")

	reply = turn(t, f, sc, "anything", dialogue.StateFinished)
	assert.Contains(t, reply, "Have a great day!")
}

func TestRebookKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	sc := completeBooking(t, f, "sess1")

	reply := turn(t, f, sc, "yes", dialogue.StateInitial)
	assert.Contains(t, reply, "What movie would you like to watch?")
	assert.Equal(t, "Alice", sc.CustomerName)
	assert.Equal(t, "alice@example.com", sc.CustomerEmail)
	assert.Nil(t, sc.SelectedMovie)
	assert.Equal(t, uint64(1), sc.LastBookingID)
}

func TestSeatConflictAtConfirmation(t *testing.T) {
	f := newFixture(t)
	sc := walkToSeatSelection(t, f, "sess1")
	turn(t, f, sc, "C1 C2", dialogue.StateConfirmBooking)

	// Another customer books C2 between summary and confirmation.
	_, err := f.ledger.Create("rival", sc.SelectedShowtime.ID, []string{"C2"})
	require.NoError(t, err)

	reply := turn(t, f, sc, "yes", dialogue.StateSeatSelection)
	assert.Contains(t, reply, "just taken: C2")
	assert.Contains(t, reply, "🎬 SCREEN HERE 🎬")
	assert.Empty(t, sc.SelectedSeats)
	assert.Empty(t, f.events.events)

	// Picking free seats afterwards completes normally.
	turn(t, f, sc, "C3 C4", dialogue.StateConfirmBooking)
	reply = turn(t, f, sc, "yes", dialogue.StateRebookDecision)
	assert.Contains(t, reply, "🎫 Booking Confirmation")
}

func TestSeatTakenBeforeSummary(t *testing.T) {
	f := newFixture(t)
	sc := walkToSeatSelection(t, f, "sess1")

	_, err := f.ledger.Create("rival", sc.SelectedShowtime.ID, []string{"D1"})
	require.NoError(t, err)

	reply := turn(t, f, sc, "D1 D2", dialogue.StateSeatSelection)
	assert.Contains(t, reply, "not available: D1")
}

func TestConfirmationDeclined(t *testing.T) {
	f := newFixture(t)
	sc := walkToSeatSelection(t, f, "sess1")
	turn(t, f, sc, "E1", dialogue.StateConfirmBooking)

	reply := turn(t, f, sc, "no", dialogue.StateInitial)
	assert.Contains(t, reply, "Booking cancelled")

	// Nothing was reserved.
	seats, err := f.inv.SeatMap("st_th1_0")
	require.NoError(t, err)
	assert.Equal(t, model.SeatAvailable, seats["E1"])
	assert.Empty(t, f.ledger.ListByUser("sess1"))
}

func TestSearchFallsBackToLocalCatalog(t *testing.T) {
	f := newFixture(t)
	sc := onboarded(t, f, "sess1")

	reply := turn(t, f, sc, "dark knight", dialogue.StateMovieSelection)
	assert.Contains(t, reply, "I found these movies:")
	assert.Contains(t, reply, "The Dark Knight")
	// The preference nudge fires because drama is a saved genre.
	assert.Contains(t, reply, "💡")
}

func TestSearchMissOffersMenu(t *testing.T) {
	f := newFixture(t)
	sc := onboarded(t, f, "sess1")

	reply := turn(t, f, sc, "totally unknown film", dialogue.StateInitial)
	assert.Contains(t, reply, "couldn't find any movies")
	assert.Contains(t, reply, "'show movies'")
	assert.Contains(t, reply, "'recommend'")
}

func TestRecommendCommand(t *testing.T) {
	f := newFixture(t)
	sc := onboarded(t, f, "sess1")

	reply := turn(t, f, sc, "recommend", dialogue.StateMovieSelection)
	assert.Contains(t, reply, "here are some recommendations")
	// Action+drama beats action alone, which beats drama alone.
	assert.Contains(t, reply, "1. The Dark Knight")
}

func TestUnknownStateResets(t *testing.T) {
	f := newFixture(t)
	sc := dialogue.NewContext("sess1")
	sc.State = dialogue.State("corrupted")

	reply := f.engine.HandleTurn(context.Background(), sc, "hello")
	assert.Contains(t, reply, "start over")
	assert.Equal(t, dialogue.StateGreeting, sc.State)
}

func TestPanicRecovery(t *testing.T) {
	inv := store.SeedDemo(time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC))
	engine := dialogue.New(
		inv, store.NewLedger(inv), store.NewPreferenceStore(),
		panicClient{}, interpret.Heuristic{}, nil,
	)
	sc := onboardedWith(t, engine, "sess1")

	reply := engine.HandleTurn(context.Background(), sc, "some search")
	assert.Contains(t, reply, "Something went wrong")
	assert.Equal(t, dialogue.StateInitial, sc.State)
}

func TestGreetingRejectsShortNames(t *testing.T) {
	f := newFixture(t)
	sc := dialogue.NewContext("sess1")

	reply := turn(t, f, sc, "x", dialogue.StateGreeting)
	assert.Contains(t, reply, "tell me your name")
	reply = turn(t, f, sc, "", dialogue.StateGreeting)
	assert.Contains(t, reply, "tell me your name")
}

// onboarded walks a fresh session through name, email and the
// preference interview, landing in the initial browse state.
func onboarded(t *testing.T, f *fixture, sessionID string) *dialogue.Context {
	t.Helper()
	sc := onboardedWith(t, f.engine, sessionID)
	return sc
}

func onboardedWith(t *testing.T, engine *dialogue.Engine, sessionID string) *dialogue.Context {
	t.Helper()
	sc := dialogue.NewContext(sessionID)
	for _, input := range []string{
		"I am alice",
		"alice@example.com",
		"action, drama",
		"Leonardo DiCaprio",
		"evening",
	} {
		engine.HandleTurn(context.Background(), sc, input)
	}
	require.Equal(t, dialogue.StateInitial, sc.State)
	return sc
}

// walkToSeatSelection onboards and navigates to the seat map for
// Inception at Cinema City's first showtime (st_th1_0).
func walkToSeatSelection(t *testing.T, f *fixture, sessionID string) *dialogue.Context {
	t.Helper()
	sc := onboarded(t, f, sessionID)
	turn(t, f, sc, "show movies", dialogue.StateMovieSelection)
	turn(t, f, sc, "1", dialogue.StateTheaterSelection)
	turn(t, f, sc, "1", dialogue.StateShowtimeSelection)
	turn(t, f, sc, "1", dialogue.StateSeatSelection)
	require.Equal(t, "st_th1_0", sc.SelectedShowtime.ID)
	return sc
}

// completeBooking runs a whole conversation up to the rebook question.
func completeBooking(t *testing.T, f *fixture, sessionID string) *dialogue.Context {
	t.Helper()
	sc := walkToSeatSelection(t, f, sessionID)
	turn(t, f, sc, "A1 A2", dialogue.StateConfirmBooking)
	turn(t, f, sc, "yes", dialogue.StateRebookDecision)
	return sc
}
