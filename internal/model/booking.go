package model

import "time"

// BookingStatusConfirmed is the only status a booking can hold.  The
// ledger is append-only and records are immutable after creation, so
// there is no pending or cancelled state.
const BookingStatusConfirmed = "confirmed"

// Booking records one confirmed reservation of seats for a showtime.
// IDs are assigned from a single monotonically increasing counter
// scoped to the ledger's lifetime and are never reused.
//
// Fields:
//  ID              – monotonic booking identifier.
//  UserID          – session/user the booking belongs to.
//  ShowtimeID      – showtime the seats were booked for.
//  Seats           – seat codes, sorted, never empty.
//  TotalPriceCents – total price in cents, frozen at booking time.
//  Status          – always "confirmed".
//  CreatedAt       – creation timestamp in UTC.
type Booking struct {
	ID              uint64    `json:"id"`
	UserID          string    `json:"user_id"`
	ShowtimeID      string    `json:"showtime_id"`
	Seats           []string  `json:"seats"`
	TotalPriceCents uint32    `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
