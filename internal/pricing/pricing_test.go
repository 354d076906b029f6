package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	weekday = time.Date(2026, time.January, 7, 19, 0, 0, 0, time.UTC) // Wednesday
	weekend = time.Date(2026, time.January, 3, 19, 0, 0, 0, time.UTC) // Saturday
)

func TestPremiumRow(t *testing.T) {
	assert.True(t, PremiumRow('A'))
	assert.True(t, PremiumRow('B'))
	assert.True(t, PremiumRow('C'))
	assert.False(t, PremiumRow('D'))
	assert.False(t, PremiumRow('H'))
}

func TestWeekend(t *testing.T) {
	assert.False(t, Weekend(weekday))
	assert.True(t, Weekend(weekend))
	sunday := time.Date(2026, time.January, 4, 10, 0, 0, 0, time.UTC)
	assert.True(t, Weekend(sunday))
}

func TestSeatPriceCents(t *testing.T) {
	base := uint32(1299)

	// No multiplier applies.
	assert.Equal(t, uint32(1299), SeatPriceCents(base, 'D', weekday))
	// Premium row only: 12.99 × 1.5 = 19.485 → 19.49.
	assert.Equal(t, uint32(1949), SeatPriceCents(base, 'A', weekday))
	// Weekend only: 12.99 × 1.2 = 15.588 → 15.59.
	assert.Equal(t, uint32(1559), SeatPriceCents(base, 'D', weekend))
	// Both multipliers combined in one step: 12.99 × 1.8 = 23.382 → 23.38.
	assert.Equal(t, uint32(2338), SeatPriceCents(base, 'A', weekend))
}

func TestSeatPriceCentsRoundsHalfUp(t *testing.T) {
	// 10.01 × 1.5 = 15.015, exactly half a cent, rounds up to 15.02.
	assert.Equal(t, uint32(1502), SeatPriceCents(1001, 'B', weekday))
}

func TestSeatPriceCentsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, uint32(2338), SeatPriceCents(1299, 'C', weekend))
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.99", FormatCents(1299))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$20.00", FormatCents(2000))
	assert.Equal(t, "$38.98", FormatCents(3898))
}
