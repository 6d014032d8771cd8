package provider

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("provider not found")
	ErrNameRequired  = errors.New("provider name is required")
	ErrAlreadyMember = errors.New("user is already a member of this provider")
	ErrMemberMissing = errors.New("user is not a member of this provider")
	ErrInvalidRole   = errors.New("invalid member role")
)

// Membership roles inside a provider company, matching the database enum.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Provider represents a co-working space company offering interview rooms.
type Provider struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	IsActive     bool
}

// Filter defines options for listing providers.
type Filter struct {
	Page     int
	PageSize int
}

// Member joins provider_members with users for management views.
type Member struct {
	UserID      string
	Email       string
	DisplayName *string
	Role        string
}
