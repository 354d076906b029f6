// Package pricing computes seat prices from seat position and calendar
// context.  All arithmetic is performed on integer cents with half-up
// rounding so that identical inputs always produce identical prices;
// no price is ever stored per seat, it is recomputed on demand and
// frozen only inside a booking record.
package pricing

import (
	"fmt"
	"time"
)

// Row and day multipliers expressed as rationals over cents.  Front
// rows A–C carry a 1.5× premium, weekend screenings a further 1.2×.
// The combined multiplier is applied in one step so the result is
// rounded exactly once.
const (
	premiumNum, premiumDen = 3, 2 // ×1.5
	weekendNum, weekendDen = 6, 5 // ×1.2
)

// PremiumRow reports whether the given row letter is a premium front
// row (A, B or C).
func PremiumRow(row byte) bool { return row >= 'A' && row <= 'C' }

// Weekend reports whether the date falls on a Saturday or Sunday.
func Weekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SeatPriceCents returns the price in cents for a seat in the given row
// at a screening on the given date.  The base price is multiplied by
// 1.5 for premium rows and 1.2 for weekend dates; both multipliers
// combine into a single rational applied once, with the result rounded
// half-up to whole cents.  The function is pure and callable without
// any showtime existing (used for display quotes).
func SeatPriceCents(baseCents uint32, row byte, date time.Time) uint32 {
	num, den := uint64(1), uint64(1)
	if PremiumRow(row) {
		num *= premiumNum
		den *= premiumDen
	}
	if Weekend(date) {
		num *= weekendNum
		den *= weekendDen
	}
	// Half-up rounding on the rational product: floor((2v + den) / 2den).
	v := uint64(baseCents) * num
	return uint32((2*v + den) / (2 * den))
}

// FormatCents renders a cent amount as a dollar string, e.g. 1299 →
// "$12.99".  Used anywhere a price is shown to the customer so the
// rendering is consistent across prompts, summaries and confirmations.
func FormatCents(cents uint32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
