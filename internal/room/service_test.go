package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhive/interview-booking-backend/internal/schedule"
	"github.com/deskhive/interview-booking-backend/internal/space"
)

type fakeRepo struct {
	rooms map[string]*Room
	seq   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: map[string]*Room{}}
}

func (f *fakeRepo) Create(_ context.Context, rm *Room) error {
	f.seq++
	rm.ID = "room-fake"
	f.rooms[rm.ID] = rm
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rm, nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Room, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(_ context.Context, rm *Room) error {
	f.rooms[rm.ID] = rm
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.rooms, id)
	return nil
}

type fakeSpaces struct {
	missing bool
}

func (f *fakeSpaces) Create(_ context.Context, _ space.CreateRequest) (*space.Space, error) {
	return nil, nil
}

func (f *fakeSpaces) GetByID(_ context.Context, id string) (*space.Space, error) {
	if f.missing {
		return nil, space.ErrNotFound
	}
	return &space.Space{ID: id, ProviderID: "provider-1", Name: "Hub"}, nil
}

func (f *fakeSpaces) List(_ context.Context, _ space.Filter) ([]*space.Space, int, error) {
	return nil, 0, nil
}

func (f *fakeSpaces) Update(_ context.Context, _ string, _ space.UpdateRequest) (*space.Space, error) {
	return nil, nil
}

func (f *fakeSpaces) Delete(_ context.Context, _ string) error { return nil }

func validSchedule() *schedule.WeeklySchedule {
	return &schedule.WeeklySchedule{
		WorkingDays:      map[string]bool{"monday": true},
		Open:             "09:00",
		Close:            "17:00",
		MaxDurationHours: 4,
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeSpaces{})

	base := CreateRequest{
		SpaceID:         "0c7e4c9e-7f07-4f4e-9dc9-9a2f0fcba111",
		Name:            "Room A",
		Capacity:        4,
		HourlyRateCents: 5000,
		Schedule:        validSchedule(),
	}

	t.Run("valid", func(t *testing.T) {
		rm, err := svc.Create(context.Background(), base)
		require.NoError(t, err)
		assert.True(t, rm.IsActive)
		assert.NotEmpty(t, rm.ID)
	})

	t.Run("nil schedule allowed", func(t *testing.T) {
		req := base
		req.Schedule = nil
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("zero capacity", func(t *testing.T) {
		req := base
		req.Capacity = 0
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("negative rate", func(t *testing.T) {
		req := base
		req.HourlyRateCents = -1
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("blank name", func(t *testing.T) {
		req := base
		req.Name = "   "
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("missing space", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeSpaces{missing: true})
		_, err := svc.Create(context.Background(), base)
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("bad schedule window", func(t *testing.T) {
		req := base
		req.Schedule = validSchedule()
		req.Schedule.Open = "18:00"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("no working days", func(t *testing.T) {
		req := base
		req.Schedule = validSchedule()
		req.Schedule.WorkingDays = map[string]bool{"monday": false}
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, schedule.ErrNoWorkingDays)
	})
}

func TestUpdateScheduleReplacement(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeSpaces{})

	rm, err := svc.Create(context.Background(), CreateRequest{
		SpaceID:  "0c7e4c9e-7f07-4f4e-9dc9-9a2f0fcba111",
		Name:     "Room A",
		Capacity: 4,
		Schedule: validSchedule(),
	})
	require.NoError(t, err)

	next := validSchedule()
	next.Holidays = []string{"2026-12-25"}
	updated, err := svc.Update(context.Background(), rm.ID, UpdateRequest{Schedule: next})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-12-25"}, updated.Schedule.Holidays)

	bad := validSchedule()
	bad.MaxDurationHours = 0
	_, err = svc.Update(context.Background(), rm.ID, UpdateRequest{Schedule: bad})
	assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
}
