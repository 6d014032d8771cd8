package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/space"
)

// SpaceTag is the minimal space reference embedded in other responses.
type SpaceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateSpaceRequest is the payload for POST /v1/spaces.
type CreateSpaceRequest struct {
	ProviderID  string  `json:"provider_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}

// UpdateSpaceRequest is the payload for PATCH /v1/spaces/:id.
type UpdateSpaceRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
	IsActive    *bool    `json:"is_active"`
}

// SpaceResponse is the API shape of a space.
type SpaceResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSpaceResponse(sp *space.Space) SpaceResponse {
	return SpaceResponse{
		ID:          sp.ID,
		ProviderID:  sp.ProviderID,
		Name:        sp.Name,
		Address:     sp.Address,
		Description: sp.Description,
		Longitude:   sp.Longitude,
		Latitude:    sp.Latitude,
		IsActive:    sp.IsActive,
		CreatedAt:   sp.CreatedAt,
	}
}
