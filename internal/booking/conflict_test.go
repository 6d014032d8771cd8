package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 600, 720, 600, 720, true},
		{"partial tail", 600, 720, 660, 780, true},
		{"partial head", 660, 780, 600, 720, true},
		{"contained", 600, 780, 660, 720, true},
		{"containing", 660, 720, 600, 780, true},
		{"back to back after", 600, 660, 660, 720, false},
		{"back to back before", 660, 720, 600, 660, false},
		{"disjoint", 540, 600, 720, 780, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestBookingInterval(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationHours: 2}
	start, end, err := b.Interval()
	require.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 720, end)

	// Times read back from storage may carry seconds.
	b = &Booking{StartTime: "10:00:00", DurationHours: 1}
	start, end, err = b.Interval()
	require.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 660, end)

	b = &Booking{StartTime: "garbage", DurationHours: 1}
	_, _, err = b.Interval()
	assert.Error(t, err)
}

func TestHasConflict(t *testing.T) {
	existing := []*Booking{
		{StartTime: "09:00", DurationHours: 1},
		{StartTime: "13:00", DurationHours: 2},
	}

	t.Run("overlapping slot", func(t *testing.T) {
		// 14:00-15:00 lands inside the 13:00-15:00 booking.
		conflict, err := HasConflict(existing, 14*60, 15*60)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("back to back is free", func(t *testing.T) {
		// 10:00-11:00 starts exactly when the 09:00 booking ends.
		conflict, err := HasConflict(existing, 10*60, 11*60)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("gap between bookings", func(t *testing.T) {
		conflict, err := HasConflict(existing, 11*60, 12*60)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("no existing bookings", func(t *testing.T) {
		conflict, err := HasConflict(nil, 600, 660)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("corrupt stored time surfaces", func(t *testing.T) {
		_, err := HasConflict([]*Booking{{StartTime: "bad", DurationHours: 1}}, 600, 660)
		assert.Error(t, err)
	})
}
