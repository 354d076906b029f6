// Package queue defines the booking event payload, its RabbitMQ
// publisher and the background consumer.  Events are strictly
// informational: the dialogue result never depends on the broker
// being reachable.
package queue

// BookingConfirmedEvent is published after a booking is recorded in
// the ledger.  It carries enough for downstream consumers (ticket
// mailers, analytics, the booking log) to act without querying the
// in-process stores.
type BookingConfirmedEvent struct {
	BookingID       uint64   `json:"booking_id"`
	UserID          string   `json:"user_id"`
	ShowtimeID      string   `json:"showtime_id"`
	MovieTitle      string   `json:"movie_title"`
	TheaterName     string   `json:"theater_name"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Seats           []string `json:"seats"`
	TotalPriceCents uint32   `json:"total_price_cents"`
	ConfirmedAt     string   `json:"confirmed_at"`
}
