package model

// SeatState is the availability state of one seat within a showtime's
// seat map.  A seat transitions available → booked exactly once per
// booking and never back, except through an explicit reservation
// rollback.
type SeatState string

// Seat states.  There is deliberately no intermediate HELD state:
// seats are only taken at explicit booking confirmation, so a
// two-state model is sufficient.
const (
	SeatAvailable SeatState = "available"
	SeatBooked    SeatState = "booked"
)

// Seat identifies a single seat within one showtime.  The seat code is
// the row letter (A–H) followed by the column number (1–10), e.g. "A1"
// or "H10".  Seats exist only as entries in a showtime's seat map;
// there is no standalone seat table.
//
// Fields:
//  ShowtimeID – showtime whose seat map contains this seat.
//  Code       – seat code, row letter plus column number.
//  State      – current availability state.
type Seat struct {
	ShowtimeID string    `json:"showtime_id"`
	Code       string    `json:"code"`
	State      SeatState `json:"state"`
}
