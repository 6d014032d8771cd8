package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrInvalidRole        = errors.New("role must be enterprise or provider")
)

// Account roles. Enterprise accounts book rooms for candidates;
// provider accounts belong to space providers.
const (
	RoleEnterprise = "enterprise"
	RoleProvider   = "provider"
)

// User represents an account in the system.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	DisplayName   *string
	Role          string
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	IsActive      bool
	IsSystemAdmin bool
	Providers     []ProviderBrief
}

// ProviderBrief holds minimal provider-company info for profile views.
type ProviderBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Filter defines options for listing users.
type Filter struct {
	Email    string
	Role     string
	IsActive *bool // nil means not filtered

	Page     int
	PageSize int
}
