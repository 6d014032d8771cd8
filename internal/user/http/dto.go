package http

import (
	"time"

	"github.com/deskhive/interview-booking-backend/internal/user"
)

// RegisterRequest is the payload for POST /v1/users/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"required,oneof=enterprise provider"`
}

// LoginRequest is the payload for POST /v1/users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PATCH /v1/users/:id.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	IsActive    *bool   `json:"is_active"`
}

// UserResponse is the shape of account data in API responses.
type UserResponse struct {
	ID            string               `json:"id"`
	Email         string               `json:"email"`
	DisplayName   *string              `json:"display_name,omitempty"`
	Role          string               `json:"role"`
	CreatedAt     time.Time            `json:"created_at"`
	LastLoginAt   *time.Time           `json:"last_login_at,omitempty"`
	IsActive      bool                 `json:"is_active"`
	IsSystemAdmin bool                 `json:"is_system_admin"`
	Providers     []user.ProviderBrief `json:"providers,omitempty"`
}

// LoginResponse is the response for POST /v1/users/login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// NewUserResponse converts a domain user to its API shape.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   lastLoginAt,
		IsActive:      u.IsActive,
		IsSystemAdmin: u.IsSystemAdmin,
		Providers:     u.Providers,
	}
}
