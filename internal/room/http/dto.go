package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/room"
	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

// ScheduleDTO mirrors schedule.WeeklySchedule on the wire.
type ScheduleDTO struct {
	WorkingDays      map[string]bool `json:"working_days" binding:"required"`
	Open             string          `json:"open" binding:"required"`
	Close            string          `json:"close" binding:"required"`
	Holidays         []string        `json:"holidays"`
	MaxDurationHours int             `json:"max_duration_hours" binding:"required,min=1"`
}

func (d *ScheduleDTO) toDomain() *schedule.WeeklySchedule {
	if d == nil {
		return nil
	}
	return &schedule.WeeklySchedule{
		WorkingDays:      d.WorkingDays,
		Open:             d.Open,
		Close:            d.Close,
		Holidays:         d.Holidays,
		MaxDurationHours: d.MaxDurationHours,
	}
}

func newScheduleDTO(s *schedule.WeeklySchedule) *ScheduleDTO {
	if s == nil {
		return nil
	}
	return &ScheduleDTO{
		WorkingDays:      s.WorkingDays,
		Open:             s.Open,
		Close:            s.Close,
		Holidays:         s.Holidays,
		MaxDurationHours: s.MaxDurationHours,
	}
}

// CreateRoomRequest is the payload for POST /v1/rooms.
type CreateRoomRequest struct {
	SpaceID         string       `json:"space_id" binding:"required,uuid"`
	Name            string       `json:"name" binding:"required"`
	Capacity        int          `json:"capacity" binding:"required,min=1"`
	HourlyRateCents int64        `json:"hourly_rate_cents" binding:"min=0"`
	Amenities       []string     `json:"amenities"`
	Schedule        *ScheduleDTO `json:"schedule"`
}

// UpdateRoomRequest is the payload for PATCH /v1/rooms/:id.
type UpdateRoomRequest struct {
	Name            *string      `json:"name"`
	Capacity        *int         `json:"capacity" binding:"omitempty,min=1"`
	HourlyRateCents *int64       `json:"hourly_rate_cents" binding:"omitempty,min=0"`
	Amenities       []string     `json:"amenities"`
	Schedule        *ScheduleDTO `json:"schedule"`
	IsActive        *bool        `json:"is_active"`
}

// RoomResponse is the API shape of a room.
type RoomResponse struct {
	ID              string       `json:"id"`
	Space           SpaceTag     `json:"space"`
	ProviderID      string       `json:"provider_id"`
	Name            string       `json:"name"`
	Capacity        int          `json:"capacity"`
	HourlyRateCents int64        `json:"hourly_rate_cents"`
	Amenities       []string     `json:"amenities,omitempty"`
	Schedule        *ScheduleDTO `json:"schedule,omitempty"`
	IsActive        bool         `json:"is_active"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// SpaceTag is the minimal space reference in room responses.
type SpaceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:              rm.ID,
		Space:           SpaceTag{ID: rm.SpaceID, Name: rm.SpaceName},
		ProviderID:      rm.ProviderID,
		Name:            rm.Name,
		Capacity:        rm.Capacity,
		HourlyRateCents: rm.HourlyRateCents,
		Amenities:       rm.Amenities,
		Schedule:        newScheduleDTO(rm.Schedule),
		IsActive:        rm.IsActive,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}
