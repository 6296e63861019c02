package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_ConflictsWith(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	// 10:00, 120-minute movie: room occupied 10:00-12:00, blocked until 12:30.
	first := ScreeningInterval(day.Add(10*time.Hour), 120)

	// 11:30 start lands inside the occupied window.
	assert.True(t, ScreeningInterval(day.Add(11*time.Hour+30*time.Minute), 120).ConflictsWith(first))

	// 12:29 is still inside the changeover buffer.
	assert.True(t, ScreeningInterval(day.Add(12*time.Hour+29*time.Minute), 90).ConflictsWith(first))

	// 12:31 clears the buffer.
	assert.False(t, ScreeningInterval(day.Add(12*time.Hour+31*time.Minute), 90).ConflictsWith(first))

	// Exactly 30 minutes after the credits is allowed.
	assert.False(t, ScreeningInterval(day.Add(12*time.Hour+30*time.Minute), 90).ConflictsWith(first))

	// An earlier screening too close before is also rejected, in both directions.
	earlier := ScreeningInterval(day.Add(8*time.Hour), 110) // 08:00-09:50, blocks until 10:20
	assert.True(t, first.ConflictsWith(earlier))
	assert.True(t, earlier.ConflictsWith(first))

	farEarlier := ScreeningInterval(day.Add(7*time.Hour), 120) // 07:00-09:00, clear by 09:30
	assert.False(t, first.ConflictsWith(farEarlier))
}

func TestSeatType_Multiplier(t *testing.T) {
	assert.Equal(t, "1", SeatStandard.Multiplier().String())
	assert.Equal(t, "1.5", SeatVIP.Multiplier().String())
	assert.Equal(t, "2", SeatCouple.Multiplier().String())
	assert.Equal(t, "1", SeatAccessible.Multiplier().String())
	assert.Equal(t, "1", SeatType("recliner").Multiplier().String())
}
