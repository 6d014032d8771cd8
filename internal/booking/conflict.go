package booking

import (
	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

// Overlaps reports whether two half-open minute intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Back-to-back slots share a boundary and
// do not overlap: a booking ending at 11:00 never conflicts with one
// starting at 11:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// Interval returns the booking's occupied minutes as a half-open
// [start, end) pair.
func (b *Booking) Interval() (int, int, error) {
	start, err := schedule.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return 0, 0, err
	}
	return int(start), int(start) + b.DurationHours*60, nil
}

// HasConflict reports whether the requested [newStart, newEnd) interval
// overlaps any of the existing bookings. Cancelled bookings must already
// be filtered out by the caller; everything passed in counts as occupying
// its slot.
func HasConflict(existing []*Booking, newStart, newEnd int) (bool, error) {
	for _, b := range existing {
		start, end, err := b.Interval()
		if err != nil {
			return false, err
		}
		if Overlaps(newStart, newEnd, start, end) {
			return true, nil
		}
	}
	return false, nil
}
