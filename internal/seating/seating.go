// Package seating renders seat maps and recommends seats.  The map
// format is part of the external contract: clients may parse the grid
// back (for example to build a selection keyboard from glyph
// positions), so rendering must be byte-for-byte deterministic for a
// given seat-state input.
package seating

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iliyamo/movie-booking-assistant/internal/model"
)

// Auditorium dimensions.  Every showtime has the same 8×10 layout.
const (
	Rows = "ABCDEFGH"
	Cols = 10
)

// suggestOrder is the row preference used by Suggest: middle rows
// first for the best view, then outward.
const suggestOrder = "DEFCBAGH"

// seatCodePattern accepts a row letter A–H followed by a column number
// 1–10.  "A0", "A11" and "I1" are all rejected.
var seatCodePattern = regexp.MustCompile(`^[A-H](10|[1-9])$`)

// ValidCode reports whether s is a well-formed seat code.
func ValidCode(s string) bool { return seatCodePattern.MatchString(s) }

// ParseCodes splits raw customer input into upper-cased seat codes and
// validates every token.  The whole batch is rejected if any single
// token is malformed; ok is false in that case and the returned slice
// holds whatever tokens were parsed so callers can report them.
func ParseCodes(input string) (codes []string, ok bool) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), "'", ""))
	if cleaned == "" {
		return nil, false
	}
	ok = true
	for _, tok := range strings.Fields(cleaned) {
		if !ValidCode(tok) {
			ok = false
		}
		codes = append(codes, tok)
	}
	return codes, ok
}

// FormatMap renders the seat map as a fixed-width grid: a screen
// banner, one line per row A–H with ten space-separated glyphs, and a
// legend.  🟦 marks an available seat, ⬛ a taken one.  Missing
// entries in the map render as taken, so a partial snapshot can never
// show a seat as bookable.
func FormatMap(seats map[string]model.SeatState) string {
	var b strings.Builder
	b.WriteString("\n🎬 SCREEN HERE 🎬\n\n")
	for _, row := range Rows {
		b.WriteByte(byte(row))
		for col := 1; col <= Cols; col++ {
			code := fmt.Sprintf("%c%d", row, col)
			if seats[code] == model.SeatAvailable {
				b.WriteString(" 🟦")
			} else {
				b.WriteString(" ⬛")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n🟦 Available  ⬛ Taken\n")
	return b.String()
}

// Suggest returns the first run of groupSize contiguous available
// seats found scanning rows in the order D, E, F, C, B, A, G, H and
// columns 1..10 within each row.  It is a greedy single pass: it does
// not search across rows or weigh alternatives, trading seat quality
// for predictability.  Returns nil when no row holds a sufficient run.
func Suggest(seats map[string]model.SeatState, groupSize int) []string {
	if groupSize <= 0 || groupSize > Cols {
		return nil
	}
	for _, row := range suggestOrder {
		var run []string
		for col := 1; col <= Cols; col++ {
			code := fmt.Sprintf("%c%d", row, col)
			if seats[code] == model.SeatAvailable {
				run = append(run, code)
				if len(run) == groupSize {
					return run
				}
			} else {
				run = nil
			}
		}
	}
	return nil
}
