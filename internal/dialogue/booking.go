package dialogue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/pricing"
	"github.com/iliyamo/movie-booking-assistant/internal/queue"
	"github.com/iliyamo/movie-booking-assistant/internal/seating"
	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// Answer word sets for the yes/no states.
var (
	yesWords     = map[string]bool{"yes": true, "y": true, "confirm": true, "yeah": true, "yep": true, "sure": true, "ok": true}
	noWords      = map[string]bool{"no": true, "n": true, "cancel": true}
	goodbyeWords = map[string]bool{"no": true, "thanks": true, "thank you": true, "bye": true, "goodbye": true}
)

// handleSeatSelection validates seat codes in two ordered steps,
// format for every token first and then live availability for every
// seat, rejecting the whole batch on either, with messages that tell
// the customer which check failed.  Only after both pass is the summary
// shown; nothing is reserved yet.
func (e *Engine) handleSeatSelection(_ context.Context, sc *Context, input string) (string, State) {
	if sc.SelectedShowtime == nil || sc.SelectedMovie == nil || sc.SelectedTheater == nil {
		sc.ClearSelection()
		return "Let's start from the top. What movie would you like to watch?", StateInitial
	}

	if group, ok := parseSuggest(input); ok {
		return e.suggestReply(sc, group), StateSeatSelection
	}

	codes, ok := seating.ParseCodes(input)
	if !ok {
		return "Invalid seat format. Please use format like 'A1 A2' or 'B1 B2'.", StateSeatSelection
	}
	codes = dedupe(codes)

	// Availability is checked against the live inventory, not the
	// snapshot the customer was shown.
	fresh, err := e.inventory.SeatMap(sc.SelectedShowtime.ID)
	if err != nil {
		log.Printf("dialogue: seat map for %s: %v", sc.SelectedShowtime.ID, err)
		return "I couldn't check seat availability right now. Please try again.", StateSeatSelection
	}
	sc.AvailableSeats = fresh
	var unavailable []string
	for _, code := range codes {
		if fresh[code] != model.SeatAvailable {
			unavailable = append(unavailable, code)
		}
	}
	if len(unavailable) > 0 {
		return fmt.Sprintf(
			"Some of the selected seats are not available: %s. Please choose different seats.\n%s",
			strings.Join(unavailable, ", "), seating.FormatMap(fresh),
		), StateSeatSelection
	}

	sc.SelectedSeats = codes
	var total uint32
	for _, code := range codes {
		total += pricing.SeatPriceCents(sc.SelectedShowtime.BasePriceCents, code[0], sc.SelectedShowtime.StartsAt)
	}
	sc.TotalCents = total

	return fmt.Sprintf(
		"Booking Summary for %s:\n"+
			"Email: %s\n"+
			"Movie: %s\n"+
			"Theater: %s\n"+
			"Time: %s\n"+
			"Seats: %s\n"+
			"Total Price: %s\n\n"+
			"Would you like to confirm your booking? (Yes/No)",
		sc.CustomerName, sc.CustomerEmail, sc.SelectedMovie.Title, sc.SelectedTheater.Name,
		sc.SelectedShowtime.Time(), strings.Join(codes, ", "), pricing.FormatCents(total),
	), StateConfirmBooking
}

// handleConfirmBooking performs the actual reservation on an explicit
// yes.  A seat conflict detected at this point (someone else booked
// first) sends the customer back to seat selection with the updated
// map; the session never advances on a failed reservation.
func (e *Engine) handleConfirmBooking(ctx context.Context, sc *Context, input string) (string, State) {
	if sc.SelectedShowtime == nil || len(sc.SelectedSeats) == 0 {
		sc.ClearSelection()
		return "Let's start from the top. What movie would you like to watch?", StateInitial
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	switch {
	case yesWords[answer]:
		booking, err := e.ledger.Create(sc.UserID, sc.SelectedShowtime.ID, sc.SelectedSeats)
		if err != nil {
			var conflict *store.SeatConflictError
			if errors.As(err, &conflict) {
				fresh, mapErr := e.inventory.SeatMap(sc.SelectedShowtime.ID)
				if mapErr == nil {
					sc.AvailableSeats = fresh
				}
				sc.SelectedSeats = nil
				sc.TotalCents = 0
				return fmt.Sprintf(
					"Sorry, these seats were just taken: %s. Please choose different seats.\n%s",
					strings.Join(conflict.Seats, ", "), seating.FormatMap(sc.AvailableSeats),
				), StateSeatSelection
			}
			log.Printf("dialogue: booking failed for session %s: %v", sc.UserID, err)
			return "Sorry, there was an error processing your booking. Please try again.", StateConfirmBooking
		}
		sc.LastBookingID = booking.ID
		e.publishBookingConfirmed(ctx, sc, booking)
		return fmt.Sprintf("%s\n\nWould you like to book another movie? (Yes/No)", e.confirmationText(sc, booking)), StateRebookDecision

	case noWords[answer]:
		sc.SelectedSeats = nil
		sc.TotalCents = 0
		return "Booking cancelled. Would you like to start over?", StateInitial

	default:
		return "Please confirm with 'yes' or 'no' to proceed with the booking.", StateConfirmBooking
	}
}

// handleRebookDecision handles the post-booking "book another movie?"
// question.
func (e *Engine) handleRebookDecision(_ context.Context, sc *Context, input string) (string, State) {
	answer := strings.ToLower(strings.TrimSpace(input))
	switch {
	case yesWords[answer]:
		sc.ClearSelection()
		return "What movie would you like to watch?", StateInitial
	case goodbyeWords[answer]:
		return fmt.Sprintf(
			"Thank you for using our service, %s! Your booking confirmation and tickets "+
				"have been sent to %s. Have a great time at the movies! 👋",
			sc.CustomerName, sc.CustomerEmail,
		), StateFinished
	default:
		return "Would you like to book another movie? (Yes/No)", StateRebookDecision
	}
}

// handleFinished is the soft-terminal state: an affirmative restarts
// the booking flow with identity preserved, anything else stays put.
func (e *Engine) handleFinished(_ context.Context, sc *Context, input string) (string, State) {
	if yesWords[strings.ToLower(strings.TrimSpace(input))] {
		sc.ClearSelection()
		return "What movie would you like to watch?", StateInitial
	}
	return "Have a great day!", StateFinished
}

// confirmationText renders the 🎫 confirmation block for a booking.
func (e *Engine) confirmationText(sc *Context, b model.Booking) string {
	return fmt.Sprintf(
		"🎫 Booking Confirmation\n"+
			"Booking ID: %d\n"+
			"Customer Name: %s\n"+
			"Email: %s\n"+
			"Theater: %s\n"+
			"Movie: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Seats: %s\n"+
			"Total Price: %s\n"+
			"\nThank you for booking with us! 🎬",
		b.ID, sc.CustomerName, sc.CustomerEmail, sc.SelectedTheater.Name, sc.SelectedMovie.Title,
		sc.SelectedShowtime.Date(), sc.SelectedShowtime.Time(),
		strings.Join(b.Seats, ", "), pricing.FormatCents(b.TotalPriceCents),
	)
}

// publishBookingConfirmed emits the booking event, best effort.
func (e *Engine) publishBookingConfirmed(ctx context.Context, sc *Context, b model.Booking) {
	if e.events == nil {
		return
	}
	e.events.BookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:       b.ID,
		UserID:          b.UserID,
		ShowtimeID:      b.ShowtimeID,
		MovieTitle:      sc.SelectedMovie.Title,
		TheaterName:     sc.SelectedTheater.Name,
		Date:            sc.SelectedShowtime.Date(),
		Time:            sc.SelectedShowtime.Time(),
		Seats:           b.Seats,
		TotalPriceCents: b.TotalPriceCents,
		ConfirmedAt:     b.CreatedAt.Format(time.RFC3339),
	})
}

// suggestReply answers a 'suggest N' command with the advisor's best
// contiguous block for the group, or says none exists.
func (e *Engine) suggestReply(sc *Context, group int) string {
	fresh, err := e.inventory.SeatMap(sc.SelectedShowtime.ID)
	if err != nil {
		return "I couldn't check seat availability right now. Please try again."
	}
	sc.AvailableSeats = fresh
	seats := seating.Suggest(fresh, group)
	if len(seats) == 0 {
		return fmt.Sprintf("I couldn't find %d seats together in one row. You can pick seats manually from the map.", group)
	}
	return fmt.Sprintf("How about %s? Enter these or any other seats to continue.", strings.Join(seats, " "))
}

// parseSuggest recognises the 'suggest N' command.
func parseSuggest(input string) (int, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) != 2 || fields[0] != "suggest" {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// dedupe removes duplicate seat codes while preserving order.
func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := codes[:0]
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
