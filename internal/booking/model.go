package booking

import (
	"net/http"
	"time"

	"github.com/deskhive/interview-booking-backend/internal/pkg/apperror"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomInactive      = apperror.New(http.StatusConflict, "room is not accepting bookings")
	ErrInvalidInput      = apperror.New(http.StatusBadRequest, "invalid booking request")
	ErrDatePast          = apperror.New(http.StatusBadRequest, "booking date is in the past")
	ErrDurationTooLong   = apperror.New(http.StatusBadRequest, "duration exceeds the room's maximum")
	ErrNotWorkingDay     = apperror.New(http.StatusConflict, "room does not operate on this weekday")
	ErrHoliday           = apperror.New(http.StatusConflict, "room is closed for a holiday on this date")
	ErrOutsideHours      = apperror.New(http.StatusConflict, "requested time falls outside operating hours")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "time slot conflicts with an existing booking")
	ErrSlotContested     = apperror.New(http.StatusConflict, "time slot is being booked by another request")
	ErrNoSchedule        = apperror.New(http.StatusConflict, "room has no operating schedule configured")
	ErrAvailabilityCheck = apperror.New(http.StatusBadGateway, "could not verify availability, please retry")
	ErrPaymentDeclined   = apperror.New(http.StatusPaymentRequired, "payment was declined")
	ErrPaymentFailed     = apperror.New(http.StatusBadGateway, "payment could not be processed, please retry")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid status transition")
)

// Booking is a confirmed reservation of a room for an interview session.
// StartTime is "HH:MM" wall clock in the room's locale; Date carries the
// civil date only. Schedule math never touches timestamps.
type Booking struct {
	ID             string
	RoomID         string
	RoomName       string
	SpaceID        string
	SpaceName      string
	UserID         string
	UserName       string
	CandidateName  string
	CandidateEmail string
	Date           time.Time
	StartTime      string
	DurationHours  int
	Status         Status
	AmountCents    int64
	PaymentRef     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter narrows booking listings.
type Filter struct {
	RoomID   string
	UserID   string
	SpaceID  string
	Status   Status
	DateFrom string
	DateTo   string
	Page     int
	PageSize int
}
