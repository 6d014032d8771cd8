package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "14:30", want: 870},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "14:30:15", want: 870}, // seconds from storage are ignored
		{in: "9am", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTime, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(545).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
}

func TestWeeklyScheduleValidate(t *testing.T) {
	valid := func() *WeeklySchedule {
		return &WeeklySchedule{
			WorkingDays:      map[string]bool{"monday": true},
			Open:             "09:00",
			Close:            "18:00",
			MaxDurationHours: 4,
		}
	}

	t.Run("valid schedule", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("no working days", func(t *testing.T) {
		s := valid()
		s.WorkingDays = map[string]bool{"monday": false, "tuesday": false}
		assert.ErrorIs(t, s.Validate(), ErrNoWorkingDays)
	})

	t.Run("nil working day map", func(t *testing.T) {
		s := valid()
		s.WorkingDays = nil
		assert.ErrorIs(t, s.Validate(), ErrNoWorkingDays)
	})

	t.Run("open after close", func(t *testing.T) {
		s := valid()
		s.Open, s.Close = "18:00", "09:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidWindow)
	})

	t.Run("open equals close", func(t *testing.T) {
		s := valid()
		s.Close = s.Open
		assert.ErrorIs(t, s.Validate(), ErrInvalidWindow)
	})

	t.Run("unparseable open time", func(t *testing.T) {
		s := valid()
		s.Open = "nine"
		assert.ErrorIs(t, s.Validate(), ErrInvalidTime)
	})

	t.Run("window shorter than max duration", func(t *testing.T) {
		s := valid()
		s.Open, s.Close = "09:00", "12:00"
		s.MaxDurationHours = 4
		assert.ErrorIs(t, s.Validate(), ErrWindowTooShort)
	})

	t.Run("zero max duration", func(t *testing.T) {
		s := valid()
		s.MaxDurationHours = 0
		assert.ErrorIs(t, s.Validate(), ErrInvalidDuration)
	})

	t.Run("bad holiday date", func(t *testing.T) {
		s := valid()
		s.Holidays = []string{"25/12/2026"}
		assert.ErrorIs(t, s.Validate(), ErrInvalidDate)
	})
}
