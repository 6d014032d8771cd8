package space

import (
	"context"
	"strings"

	"github.com/deskhive/interview-booking-backend/internal/provider"
)

// CreateRequest carries data to create a space.
type CreateRequest struct {
	ProviderID  string
	Name        string
	Address     string
	Description string
	Longitude   float64
	Latitude    float64
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name        *string
	Address     *string
	Description *string
	Longitude   *float64
	Latitude    *float64
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Space, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	provService provider.Service
}

func NewService(repo Repository, provService provider.Service) Service {
	return &service{repo: repo, provService: provService}
}

func validateGeo(sp *Space) error {
	if sp.Latitude < -90 || sp.Latitude > 90 || sp.Longitude < -180 || sp.Longitude > 180 {
		return ErrInvalidGeo
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Space, error) {
	if req.ProviderID == "" {
		return nil, ErrProviderIDRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.provService.GetByID(ctx, req.ProviderID); err != nil {
		return nil, ErrProviderNotFound
	}

	sp := &Space{
		ProviderID:  req.ProviderID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		IsActive:    true,
	}

	if err := validateGeo(sp); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		sp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		sp.Address = *req.Address
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.Longitude != nil {
		sp.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		sp.Latitude = *req.Latitude
	}
	if req.IsActive != nil {
		sp.IsActive = *req.IsActive
	}

	if err := validateGeo(sp); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
