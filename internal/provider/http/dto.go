package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/provider"
)

// ProviderTag is the minimal provider reference embedded in other responses.
type ProviderTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateProviderRequest is the payload for POST /v1/providers.
type CreateProviderRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

// UpdateProviderRequest is the payload for PATCH /v1/providers/:id.
type UpdateProviderRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	IsActive     *bool   `json:"is_active"`
}

// AddMemberRequest is the payload for POST /v1/providers/:id/members.
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=owner admin member"`
}

// ProviderResponse is the API shape of a provider company.
type ProviderResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// MemberResponse is the API shape of a provider membership.
type MemberResponse struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	Role        string  `json:"role"`
}

func NewProviderResponse(p *provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		ContactEmail: p.ContactEmail,
		CreatedAt:    p.CreatedAt,
		IsActive:     p.IsActive,
	}
}

func NewMemberResponse(m *provider.Member) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        m.Role,
	}
}
