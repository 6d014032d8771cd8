package space

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("space not found")
	ErrNameRequired       = errors.New("space name is required")
	ErrProviderIDRequired = errors.New("provider_id is required")
	ErrProviderNotFound   = errors.New("provider not found")
	ErrInvalidGeo         = errors.New("invalid coordinates")
)

// Space represents a co-working venue under a provider, hosting one or
// more bookable interview rooms.
type Space struct {
	ID          string
	ProviderID  string
	Name        string
	Address     string
	Description string
	Longitude   float64
	Latitude    float64
	IsActive    bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing spaces.
type Filter struct {
	ProviderID string
	Keyword    string // matched against name and address
	Page       int
	PageSize   int
}
