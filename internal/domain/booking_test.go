package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingPaid))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingPaid.CanTransitionTo(BookingRefunded))

	// no jumps
	assert.False(t, BookingPending.CanTransitionTo(BookingPaid))
	assert.False(t, BookingPending.CanTransitionTo(BookingRefunded))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingRefunded))
	assert.False(t, BookingPaid.CanTransitionTo(BookingCancelled))
}

func TestBookingStatus_TerminalStatesAreClosed(t *testing.T) {
	all := []BookingStatus{BookingPending, BookingConfirmed, BookingPaid, BookingCancelled, BookingRefunded}

	for _, terminal := range []BookingStatus{BookingCancelled, BookingRefunded} {
		assert.True(t, terminal.Terminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"terminal status %s must not transition to %s", terminal, next)
		}
	}
}

// Every walk along allowed transitions must end in cancelled or refunded.
func TestBookingStatus_EveryPathTerminates(t *testing.T) {
	var walk func(s BookingStatus, depth int)
	walk = func(s BookingStatus, depth int) {
		if depth > 10 {
			t.Fatalf("transition chain from pending did not terminate")
		}
		nexts := bookingTransitions[s]
		if len(nexts) == 0 {
			assert.True(t, s.Terminal(), "dead-end status %s is not terminal", s)
			return
		}
		for _, n := range nexts {
			walk(n, depth+1)
		}
	}
	walk(BookingPending, 0)
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingPaid.Valid())
	assert.False(t, BookingStatus("shipped").Valid())
}
