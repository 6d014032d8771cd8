package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaySchedule() *WeeklySchedule {
	return &WeeklySchedule{
		WorkingDays: map[string]bool{
			"monday":    true,
			"tuesday":   true,
			"wednesday": true,
			"thursday":  true,
			"friday":    true,
		},
		Open:             "09:00",
		Close:            "18:00",
		MaxDurationHours: 4,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		schedule *WeeklySchedule
		date     string
		start    string
		duration int
		want     Reason
	}{
		{
			name:     "weekday inside window",
			schedule: weekdaySchedule(),
			date:     "2026-09-02", // Wednesday
			start:    "14:00",
			duration: 2,
			want:     OK,
		},
		{
			name: "disabled weekday rejected",
			schedule: &WeeklySchedule{
				WorkingDays:      map[string]bool{"monday": true, "tuesday": false},
				Open:             "09:00",
				Close:            "18:00",
				MaxDurationHours: 4,
			},
			date:     "2026-09-01", // Tuesday
			start:    "10:00",
			duration: 1,
			want:     NotWorkingDay,
		},
		{
			name:     "weekend rejected when map has no entry",
			schedule: weekdaySchedule(),
			date:     "2026-09-05", // Saturday
			start:    "10:00",
			duration: 1,
			want:     NotWorkingDay,
		},
		{
			name: "holiday beats working day",
			schedule: &WeeklySchedule{
				WorkingDays:      map[string]bool{"thursday": true},
				Open:             "09:00",
				Close:            "18:00",
				Holidays:         []string{"2025-12-25"},
				MaxDurationHours: 4,
			},
			date:     "2025-12-25", // Thursday
			start:    "10:00",
			duration: 1,
			want:     Holiday,
		},
		{
			name: "holiday on different date does not trigger",
			schedule: &WeeklySchedule{
				WorkingDays:      map[string]bool{"wednesday": true},
				Open:             "09:00",
				Close:            "18:00",
				Holidays:         []string{"2026-12-25"},
				MaxDurationHours: 4,
			},
			date:     "2026-09-02",
			start:    "10:00",
			duration: 1,
			want:     OK,
		},
		{
			name:     "ends exactly at close is allowed",
			schedule: weekdaySchedule(),
			date:     "2026-09-02",
			start:    "17:00",
			duration: 1,
			want:     OK,
		},
		{
			name:     "spills past close is rejected",
			schedule: weekdaySchedule(),
			date:     "2026-09-02",
			start:    "17:30",
			duration: 1,
			want:     OutsideHours,
		},
		{
			name:     "starts before open is rejected",
			schedule: weekdaySchedule(),
			date:     "2026-09-02",
			start:    "08:30",
			duration: 1,
			want:     OutsideHours,
		},
		{
			name:     "starts exactly at open is allowed",
			schedule: weekdaySchedule(),
			date:     "2026-09-02",
			start:    "09:00",
			duration: 1,
			want:     OK,
		},
		{
			name: "duration crossing midnight can never fit",
			schedule: &WeeklySchedule{
				WorkingDays:      map[string]bool{"wednesday": true},
				Open:             "09:00",
				Close:            "23:59",
				MaxDurationHours: 4,
			},
			date:     "2026-09-02",
			start:    "23:00",
			duration: 2,
			want:     OutsideHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := mustDate(t, tt.date)
			start, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)

			got := Evaluate(tt.schedule, date, start, tt.duration)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == OK, IsAvailable(tt.schedule, date, start, tt.duration))
		})
	}
}

// Evaluate is pure: repeated calls with the same inputs agree.
func TestEvaluateIdempotent(t *testing.T) {
	s := weekdaySchedule()
	date := mustDate(t, "2026-09-02")
	start, err := ParseTimeOfDay("14:00")
	require.NoError(t, err)

	first := Evaluate(s, date, start, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(s, date, start, 2))
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "tuesday", WeekdayName(mustDate(t, "2026-09-01")))
	assert.Equal(t, "sunday", WeekdayName(mustDate(t, "2026-09-06")))
}
