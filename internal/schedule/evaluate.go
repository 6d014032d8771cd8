package schedule

import "time"

// Reason classifies the outcome of evaluating a requested slot
// against a room's weekly schedule.
type Reason int

const (
	// OK means the requested slot falls on a working day, off holidays,
	// and fits entirely inside the daily window.
	OK Reason = iota
	// NotWorkingDay means the weekday of the requested date is disabled.
	NotWorkingDay
	// Holiday means the requested date is a holiday exception.
	Holiday
	// OutsideHours means the requested interval is not fully contained
	// in the room's open window.
	OutsideHours
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case NotWorkingDay:
		return "not_working_day"
	case Holiday:
		return "holiday"
	case OutsideHours:
		return "outside_hours"
	default:
		return "unknown"
	}
}

// Evaluate decides whether a requested slot is within a room's operating
// schedule. It is a pure function over its inputs.
//
// Checks run in order: working day, holiday, then window containment.
// The requested interval is [start, start+duration) in minutes and must
// fit entirely inside [open, close). All arithmetic is same-day: a
// duration that pushes the end past midnight can never satisfy
// containment because close is at most 24*60, so such requests fail
// with OutsideHours rather than wrapping.
//
// Evaluate assumes the schedule passed Validate; an unparseable window
// rejects with OutsideHours.
func Evaluate(s *WeeklySchedule, date time.Time, start TimeOfDay, durationHours int) Reason {
	if !s.WorkingDays[WeekdayName(date)] {
		return NotWorkingDay
	}

	iso := date.Format("2006-01-02")
	for _, h := range s.Holidays {
		if h == iso {
			return Holiday
		}
	}

	open, close, err := s.Window()
	if err != nil {
		return OutsideHours
	}

	selStart := int(start)
	selEnd := selStart + durationHours*60
	if selStart < int(open) || selEnd > int(close) {
		return OutsideHours
	}

	return OK
}

// IsAvailable reports whether the requested slot passes Evaluate.
func IsAvailable(s *WeeklySchedule, date time.Time, start TimeOfDay, durationHours int) bool {
	return Evaluate(s, date, start, durationHours) == OK
}
