package store

import (
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
	"github.com/iliyamo/movie-booking-assistant/internal/pricing"
)

// Ledger is the append-only record of confirmed bookings.  It owns
// the reservation path end to end: Create reserves the seats through
// the inventory store itself, so a ledger record can only ever exist
// for seats the ledger caused to transition to booked.  IDs come from
// a single monotonically increasing counter and are never reused.
type Ledger struct {
	mu       sync.Mutex
	inv      *InventoryStore
	nextID   uint64
	bookings map[uint64]model.Booking
	order    []uint64 // creation order, newest last
}

// NewLedger returns a ledger bound to the inventory store it reserves
// seats against.
func NewLedger(inv *InventoryStore) *Ledger {
	return &Ledger{inv: inv, nextID: 1, bookings: make(map[uint64]model.Booking)}
}

// Create reserves the given seats for the showtime and records the
// booking in one step.  The per-seat price is computed from the
// showtime's base price, the seat row and the screening date, and the
// total is frozen into the record.  On a seat conflict no record is
// created and the *SeatConflictError from the inventory is returned
// unchanged; the caller re-prompts with fresh availability.  Seats in
// the returned record are sorted.
func (l *Ledger) Create(userID, showtimeID string, seatCodes []string) (model.Booking, error) {
	if len(seatCodes) == 0 {
		return model.Booking{}, ErrEmptySeatSet
	}
	st, err := l.inv.GetShowtime(showtimeID)
	if err != nil {
		return model.Booking{}, err
	}
	if err := l.inv.Reserve(showtimeID, seatCodes); err != nil {
		return model.Booking{}, err
	}
	var total uint32
	for _, code := range seatCodes {
		total += pricing.SeatPriceCents(st.BasePriceCents, code[0], st.StartsAt)
	}
	seats := make([]string, len(seatCodes))
	copy(seats, seatCodes)
	sort.Strings(seats)

	l.mu.Lock()
	defer l.mu.Unlock()
	b := model.Booking{
		ID:              l.nextID,
		UserID:          userID,
		ShowtimeID:      showtimeID,
		Seats:           seats,
		TotalPriceCents: total,
		Status:          model.BookingStatusConfirmed,
		CreatedAt:       time.Now().UTC(),
	}
	l.nextID++
	l.bookings[b.ID] = b
	l.order = append(l.order, b.ID)
	return b, nil
}

// Get returns a booking by ID, or ErrBookingNotFound.
func (l *Ledger) Get(id uint64) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.bookings[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// ListByUser returns a user's bookings, newest first.
func (l *Ledger) ListByUser(userID string) []model.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []model.Booking
	for i := len(l.order) - 1; i >= 0; i-- {
		if b := l.bookings[l.order[i]]; b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// TrendingMovieIDs ranks movies by how many recent bookings reference
// them, most booked first, and returns up to limit IDs.  Ties keep
// recency order.  Used by the dialogue's "show movies" listing; an
// empty result means no bookings exist yet and callers fall back to
// the full catalog.
func (l *Ledger) TrendingMovieIDs(limit int) []string {
	l.mu.Lock()
	counts := make(map[string]int)
	var firstSeen []string
	for i := len(l.order) - 1; i >= 0; i-- {
		b := l.bookings[l.order[i]]
		st, err := l.inv.GetShowtime(b.ShowtimeID)
		if err != nil {
			continue
		}
		if counts[st.MovieID] == 0 {
			firstSeen = append(firstSeen, st.MovieID)
		}
		counts[st.MovieID]++
	}
	l.mu.Unlock()

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})
	if limit > 0 && len(firstSeen) > limit {
		firstSeen = firstSeen[:limit]
	}
	return firstSeen
}
