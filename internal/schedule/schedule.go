package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoWorkingDays   = errors.New("schedule must enable at least one working day")
	ErrInvalidWindow   = errors.New("schedule open time must be before close time")
	ErrWindowTooShort  = errors.New("schedule window is shorter than the maximum booking duration")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrInvalidDuration = errors.New("maximum duration must be a positive number of hours")
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// All schedule arithmetic works on these values; no timezone conversion
// ever happens, so a room's times mean whatever its local clock says.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored; times read back from storage may carry them.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats the time of day as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
// The result carries no timezone meaning; only the civil date matters.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName returns the lowercase weekday name for a civil date.
// The weekday is derived from the calendar date alone, so it cannot
// drift across timezones the way a timestamp-based lookup would.
func WeekdayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

// WeeklySchedule is the availability pattern of a single room: which
// weekdays it operates, its daily open window, and holiday exception
// dates on which it is closed regardless of weekday.
//
// It is configured by the provider through the room-editing endpoints
// and is read-only to booking consumers.
type WeeklySchedule struct {
	// WorkingDays maps lowercase weekday names ("monday", ...) to whether
	// the room operates on that day. Missing keys count as disabled.
	WorkingDays map[string]bool `json:"working_days"`
	// Open and Close bound the daily window, "HH:MM" 24-hour wall clock.
	Open  string `json:"open"`
	Close string `json:"close"`
	// Holidays are "YYYY-MM-DD" dates on which the room is closed.
	Holidays []string `json:"holidays,omitempty"`
	// MaxDurationHours caps a single booking's length.
	MaxDurationHours int `json:"max_duration_hours"`
}

// Window returns the parsed open/close bounds of the daily window.
func (s *WeeklySchedule) Window() (TimeOfDay, TimeOfDay, error) {
	open, err := ParseTimeOfDay(s.Open)
	if err != nil {
		return 0, 0, err
	}
	close, err := ParseTimeOfDay(s.Close)
	if err != nil {
		return 0, 0, err
	}
	return open, close, nil
}

// Validate checks the structural invariants of a schedule:
// at least one working day, a well-formed open window with open < close,
// a positive max duration that fits inside the window, and parseable
// holiday dates. Evaluate assumes these hold.
func (s *WeeklySchedule) Validate() error {
	hasWorkingDay := false
	for _, enabled := range s.WorkingDays {
		if enabled {
			hasWorkingDay = true
			break
		}
	}
	if !hasWorkingDay {
		return ErrNoWorkingDays
	}

	open, close, err := s.Window()
	if err != nil {
		return err
	}
	if open >= close {
		return ErrInvalidWindow
	}

	if s.MaxDurationHours < 1 {
		return ErrInvalidDuration
	}
	if int(close-open) < s.MaxDurationHours*60 {
		return ErrWindowTooShort
	}

	for _, h := range s.Holidays {
		if _, err := ParseDate(h); err != nil {
			return err
		}
	}
	return nil
}
