package dialogue

import (
	"context"
	"log"

	"github.com/iliyamo/movie-booking-assistant/internal/catalog"
	"github.com/iliyamo/movie-booking-assistant/internal/queue"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// Interpreter extracts structured fields from free text.  It must be
// deterministic per input; the engine treats its output as data, not
// advice, and re-validates everything.
type Interpreter interface {
	ExtractName(text string) string
	ExtractEmail(text string) string
	ValidateEmail(s string) bool
}

// EventPublisher receives booking events after a successful
// confirmation.  Publishing is best-effort: implementations log their
// own failures and the engine never lets one affect the reply.
type EventPublisher interface {
	BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent)
}

// handlerFunc processes one turn for one state and returns the reply
// plus the next state.  Handlers never return errors: every failure
// becomes renderable text and a state that keeps the session
// consistent.
type handlerFunc func(ctx context.Context, sc *Context, input string) (string, State)

// Engine is the dialogue state machine.  It holds no per-conversation
// state of its own (all of that lives in the Context) and is safe for
// concurrent use by different sessions, which share only the
// inventory, ledger and preference stores.
type Engine struct {
	inventory *store.InventoryStore
	ledger    *store.Ledger
	prefs     *store.PreferenceStore
	catalog   catalog.Client
	interp    Interpreter
	events    EventPublisher

	handlers map[State]handlerFunc
}

// New wires an engine.  catalog is typically a *catalog.Service so
// external outages degrade to the local list; events may be nil to
// disable booking notifications.
func New(inv *store.InventoryStore, ledger *store.Ledger, prefs *store.PreferenceStore, cat catalog.Client, interp Interpreter, events EventPublisher) *Engine {
	e := &Engine{
		inventory: inv,
		ledger:    ledger,
		prefs:     prefs,
		catalog:   cat,
		interp:    interp,
		events:    events,
	}
	e.handlers = map[State]handlerFunc{
		StateGreeting:          e.handleGreeting,
		StateGetEmail:          e.handleGetEmail,
		StatePreferences:       e.handlePreferences,
		StateInitial:           e.handleInitial,
		StateMovieSelection:    e.handleMovieSelection,
		StateTheaterSelection:  e.handleTheaterSelection,
		StateShowtimeSelection: e.handleShowtimeSelection,
		StateSeatSelection:     e.handleSeatSelection,
		StateConfirmBooking:    e.handleConfirmBooking,
		StateRebookDecision:    e.handleRebookDecision,
		StateFinished:          e.handleFinished,
	}
	return e
}

// HandleTurn advances the session by one turn.  The handler for the
// current state runs to completion and the context's state is updated
// before returning, so a session observed between turns is always
// consistent.  A panicking collaborator is caught here: the state is
// left untouched and the customer gets a retry prompt; no raw fault
// ever reaches the transport layer.
func (e *Engine) HandleTurn(ctx context.Context, sc *Context, input string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dialogue: recovered panic in state %s: %v", sc.State, r)
			reply = "Something went wrong on our side. Let's try that again."
		}
	}()
	handler, ok := e.handlers[sc.State]
	if !ok {
		// Unknown tag means the context was corrupted outside the
		// engine; start the conversation over rather than guess.
		log.Printf("dialogue: unknown state %q for session %s, resetting", sc.State, sc.UserID)
		sc.Reset()
		return "I'm not sure where we were. Let's start over. Please tell me your name:"
	}
	reply, next := handler(ctx, sc, input)
	sc.State = next
	return reply
}
