package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/booking"
)

// CreateBookingRequest is the payload for POST /v1/bookings.
type CreateBookingRequest struct {
	RoomID         string `json:"room_id" binding:"required,uuid"`
	CandidateName  string `json:"candidate_name" binding:"required"`
	CandidateEmail string `json:"candidate_email" binding:"omitempty,email"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	DurationHours  int    `json:"duration_hours" binding:"required,min=1"`
	MethodToken    string `json:"method_token"`
}

// UpdateStatusRequest is the payload for PATCH /v1/bookings/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID             string    `json:"id"`
	Room           Tag       `json:"room"`
	Space          Tag       `json:"space"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name,omitempty"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email,omitempty"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	DurationHours  int       `json:"duration_hours"`
	Status         string    `json:"status"`
	AmountCents    int64     `json:"amount_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Tag is a minimal id/name reference.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Room:           Tag{ID: b.RoomID, Name: b.RoomName},
		Space:          Tag{ID: b.SpaceID, Name: b.SpaceName},
		UserID:         b.UserID,
		UserName:       b.UserName,
		CandidateName:  b.CandidateName,
		CandidateEmail: b.CandidateEmail,
		Date:           b.Date.Format("2006-01-02"),
		StartTime:      b.StartTime,
		DurationHours:  b.DurationHours,
		Status:         string(b.Status),
		AmountCents:    b.AmountCents,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// SlotResponse is one hour in an availability report.
type SlotResponse struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityResponse is the body of GET /v1/rooms/:id/availability.
type AvailabilityResponse struct {
	RoomID string         `json:"room_id"`
	Date   string         `json:"date"`
	Reason string         `json:"reason,omitempty"`
	Open   string         `json:"open,omitempty"`
	Close  string         `json:"close,omitempty"`
	Slots  []SlotResponse `json:"slots"`
}

func NewAvailabilityResponse(day *booking.DayAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		RoomID: day.RoomID,
		Date:   day.Date,
		Reason: day.Reason,
		Open:   day.Open,
		Close:  day.Close,
		Slots:  make([]SlotResponse, 0, len(day.Slots)),
	}
	for _, s := range day.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Start:     s.Start,
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return resp
}
