package room

import (
	"context"
	"strings"

	"github.com/deskhive/interview-booking-backend/internal/schedule"
	"github.com/deskhive/interview-booking-backend/internal/space"
)

// CreateRequest carries data to create a room.
type CreateRequest struct {
	SpaceID         string
	Name            string
	Capacity        int
	HourlyRateCents int64
	Amenities       []string
	Schedule        *schedule.WeeklySchedule
}

// UpdateRequest carries data for partial updates. A non-nil Schedule
// replaces the whole schedule; there is no field-level merge.
type UpdateRequest struct {
	Name            *string
	Capacity        *int
	HourlyRateCents *int64
	Amenities       []string
	Schedule        *schedule.WeeklySchedule
	IsActive        *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	spaceService space.Service
}

func NewService(repo Repository, spaceService space.Service) Service {
	return &service{repo: repo, spaceService: spaceService}
}

func validateRoom(rm *Room) error {
	if rm.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if rm.HourlyRateCents < 0 {
		return ErrInvalidRate
	}
	if rm.Schedule != nil {
		if err := rm.Schedule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if req.SpaceID == "" {
		return nil, ErrSpaceIDRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.spaceService.GetByID(ctx, req.SpaceID); err != nil {
		return nil, ErrSpaceNotFound
	}

	rm := &Room{
		SpaceID:         req.SpaceID,
		Name:            strings.TrimSpace(req.Name),
		Capacity:        req.Capacity,
		HourlyRateCents: req.HourlyRateCents,
		Amenities:       req.Amenities,
		Schedule:        req.Schedule,
		IsActive:        true,
	}

	if err := validateRoom(rm); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		rm.Name = strings.TrimSpace(*req.Name)
	}
	if req.Capacity != nil {
		rm.Capacity = *req.Capacity
	}
	if req.HourlyRateCents != nil {
		rm.HourlyRateCents = *req.HourlyRateCents
	}
	if req.Amenities != nil {
		rm.Amenities = req.Amenities
	}
	if req.Schedule != nil {
		rm.Schedule = req.Schedule
	}
	if req.IsActive != nil {
		rm.IsActive = *req.IsActive
	}

	if err := validateRoom(rm); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
