package room

import (
	"errors"
	"time"

	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrNameRequired    = errors.New("room name is required")
	ErrSpaceIDRequired = errors.New("space_id is required")
	ErrSpaceNotFound   = errors.New("space not found")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidRate     = errors.New("hourly rate cannot be negative")
)

// Room is a bookable interview room inside a space. Its Schedule governs
// when it can be booked; a nil Schedule means the provider has not
// published availability yet and the room cannot be booked.
type Room struct {
	ID              string
	SpaceID         string
	SpaceName       string
	ProviderID      string
	Name            string
	Capacity        int
	HourlyRateCents int64
	Amenities       []string
	Schedule        *schedule.WeeklySchedule
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	SpaceID    string
	ProviderID string
	Keyword    string
	Page       int
	PageSize   int
}
