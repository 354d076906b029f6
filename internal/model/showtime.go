package model

import "time"

// Showtime is one scheduled screening of a movie at a theater.  It is
// immutable once created and uniquely identifies one seat map in the
// inventory store.  Prices are carried in integer cents to avoid
// floating point drift; the seat-level price is computed from
// BasePriceCents by the pricing package, never stored per seat.
//
// Fields:
//  ID             – showtime identifier (e.g. "st_th1_0").
//  TheaterID      – theater where the screening takes place.
//  MovieID        – movie being screened.
//  StartsAt       – screening date and start time in UTC.
//  BasePriceCents – base ticket price in cents before row/day multipliers.
type Showtime struct {
	ID             string    `json:"id"`
	TheaterID      string    `json:"theater_id"`
	MovieID        string    `json:"movie_id"`
	StartsAt       time.Time `json:"starts_at"`
	BasePriceCents uint32    `json:"base_price_cents"`
}

// Date returns the showtime's calendar date formatted for display.
func (s Showtime) Date() string { return s.StartsAt.Format("2006-01-02") }

// Time returns the showtime's start time formatted for display.
func (s Showtime) Time() string { return s.StartsAt.Format("15:04") }
