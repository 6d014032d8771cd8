package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/deskhive/interview-booking-backend/internal/user"
)

// CreateRequest carries data to create a provider company.
type CreateRequest struct {
	Name         string
	ContactEmail string
	OwnerUserID  string
}

// UpdateRequest defines the fields that can be updated.
type UpdateRequest struct {
	Name         *string
	ContactEmail *string
	IsActive     *bool
}

// Service defines business logic for provider companies.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, providerID, userID, role string) error
	RemoveMember(ctx context.Context, providerID, userID string) error
	ListMembers(ctx context.Context, providerID string) ([]*Member, error)

	// IsMember reports whether the user belongs to the provider in any role.
	IsMember(ctx context.Context, providerID, userID string) (bool, error)
	// IsManagerOrAbove reports whether the user is an owner or admin.
	IsManagerOrAbove(ctx context.Context, providerID, userID string) (bool, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

// NewService creates a provider Service.
func NewService(repo Repository, userService user.Service) Service {
	return &service{repo: repo, userService: userService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Provider, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	p := &Provider{
		Name:         name,
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// The creating account becomes the owner.
	if req.OwnerUserID != "" {
		if err := s.repo.AddMember(ctx, p.ID, req.OwnerUserID, RoleOwner); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		newName := strings.TrimSpace(*req.Name)
		if newName == "" {
			return nil, ErrNameRequired
		}
		p.Name = newName
	}
	if req.ContactEmail != nil {
		p.ContactEmail = strings.TrimSpace(*req.ContactEmail)
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AddMember(ctx context.Context, providerID, userID, role string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != RoleOwner && role != RoleAdmin && role != RoleMember {
		return ErrInvalidRole
	}

	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return err
	}

	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return err
	}

	return s.repo.AddMember(ctx, providerID, userID, role)
}

func (s *service) RemoveMember(ctx context.Context, providerID, userID string) error {
	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return err
	}
	return s.repo.RemoveMember(ctx, providerID, userID)
}

func (s *service) ListMembers(ctx context.Context, providerID string) ([]*Member, error) {
	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, providerID)
}

func (s *service) IsMember(ctx context.Context, providerID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	_, err := s.repo.GetMember(ctx, providerID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberMissing) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *service) IsManagerOrAbove(ctx context.Context, providerID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	m, err := s.repo.GetMember(ctx, providerID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberMissing) {
			return false, nil
		}
		return false, err
	}
	return m.Role == RoleOwner || m.Role == RoleAdmin, nil
}
