package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhive/interview-booking-backend/internal/hold"
	"github.com/deskhive/interview-booking-backend/internal/payment"
	"github.com/deskhive/interview-booking-backend/internal/room"
	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

type fakeRepo struct {
	bookings  []*Booking
	listErr   error
	createErr error
	created   *Booking
	statuses  map[string]Status
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "booking-1"
	f.created = b
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			found := *b
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return f.bookings, len(f.bookings), nil
}

func (f *fakeRepo) ListForRoomDate(_ context.Context, _ string, _ time.Time) ([]*Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	if f.statuses == nil {
		f.statuses = map[string]Status{}
	}
	f.statuses[id] = status
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return ErrNotFound
}

type fakeRooms struct {
	room *room.Room
	err  error
}

func (f *fakeRooms) GetByID(_ context.Context, _ string) (*room.Room, error) {
	return f.room, f.err
}

type fakeProviders struct {
	manager bool
}

func (f *fakeProviders) IsManagerOrAbove(_ context.Context, _, _ string) (bool, error) {
	return f.manager, nil
}

type fakePayments struct {
	chargeErr error
	charged   []payment.ChargeRequest
	refunded  []string
}

func (f *fakePayments) Charge(_ context.Context, req payment.ChargeRequest) (*payment.Receipt, error) {
	if f.chargeErr != nil {
		return nil, f.chargeErr
	}
	f.charged = append(f.charged, req)
	return &payment.Receipt{Reference: "pay-1", AmountCents: req.AmountCents, ChargedAt: time.Now()}, nil
}

func (f *fakePayments) Refund(_ context.Context, ref string) error {
	f.refunded = append(f.refunded, ref)
	return nil
}

type deniedLocker struct{}

func (deniedLocker) Acquire(context.Context, string, time.Duration) (bool, error) {
	return false, nil
}
func (deniedLocker) Release(context.Context, string) error { return nil }

func weekdaySchedule() *schedule.WeeklySchedule {
	return &schedule.WeeklySchedule{
		WorkingDays: map[string]bool{
			"monday": true, "tuesday": true, "wednesday": true,
			"thursday": true, "friday": true,
		},
		Open:             "09:00",
		Close:            "18:00",
		Holidays:         []string{"2026-09-07"},
		MaxDurationHours: 4,
	}
}

func testRoom() *room.Room {
	return &room.Room{
		ID:              "room-1",
		SpaceID:         "space-1",
		SpaceName:       "Downtown Hub",
		ProviderID:      "provider-1",
		Name:            "Interview Room A",
		Capacity:        4,
		HourlyRateCents: 5000,
		Schedule:        weekdaySchedule(),
		IsActive:        true,
	}
}

type fixture struct {
	repo     *fakeRepo
	rooms    *fakeRooms
	payments *fakePayments
	svc      *service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     &fakeRepo{},
		rooms:    &fakeRooms{room: testRoom()},
		payments: &fakePayments{},
	}
	svc := NewService(
		f.repo, f.rooms, &fakeProviders{}, hold.NewNoopLocker(),
		f.payments, 30*time.Second, zerolog.Nop(),
	).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	f.svc = svc
	return f
}

// 2026-09-01 is a Tuesday.
func validRequest() CreateRequest {
	return CreateRequest{
		RoomID:        "room-1",
		UserID:        "user-1",
		CandidateName: "Jordan Lee",
		Date:          "2026-09-01",
		StartTime:     "10:00",
		DurationHours: 2,
	}
}

func TestCreateSuccess(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", b.ID)
	assert.Equal(t, StatusUpcoming, b.Status)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, int64(10000), b.AmountCents)
	assert.Equal(t, "pay-1", b.PaymentRef)
	require.Len(t, f.payments.charged, 1)
	assert.Equal(t, int64(10000), f.payments.charged[0].AmountCents)
	require.NotNil(t, f.repo.created)
}

func TestCreateScheduleRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"not a working day", func(r *CreateRequest) { r.Date = "2026-09-05" }, ErrNotWorkingDay}, // Saturday
		{"holiday", func(r *CreateRequest) { r.Date = "2026-09-07" }, ErrHoliday},                 // Monday holiday
		{"before opening", func(r *CreateRequest) { r.StartTime = "08:00" }, ErrOutsideHours},
		{"runs past closing", func(r *CreateRequest) { r.StartTime = "17:00" }, ErrOutsideHours},
		{"past date", func(r *CreateRequest) { r.Date = "2026-07-31" }, ErrDatePast},
		{"duration exceeds max", func(r *CreateRequest) { r.DurationHours = 5 }, ErrDurationTooLong},
		{"bad time", func(r *CreateRequest) { r.StartTime = "25:00" }, ErrInvalidInput},
		{"bad date", func(r *CreateRequest) { r.Date = "not-a-date" }, ErrInvalidInput},
		{"missing candidate", func(r *CreateRequest) { r.CandidateName = " " }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			// Rejected requests never reach payment or storage.
			assert.Empty(t, f.payments.charged)
			assert.Nil(t, f.repo.created)
		})
	}
}

func TestCreateConflictSkipsPayment(t *testing.T) {
	f := newFixture(t)
	f.repo.bookings = []*Booking{{ID: "b-0", StartTime: "11:00", DurationHours: 1}}

	req := validRequest() // 10:00-12:00 overlaps 11:00-12:00
	_, err := f.svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Empty(t, f.payments.charged)
	assert.Nil(t, f.repo.created)
}

func TestCreateBackToBackAllowed(t *testing.T) {
	f := newFixture(t)
	f.repo.bookings = []*Booking{{ID: "b-0", StartTime: "09:00", DurationHours: 1}}

	req := validRequest() // starts 10:00, exactly when b-0 ends
	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateFetchFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.listErr = errors.New("connection refused")

	_, err := f.svc.Create(context.Background(), validRequest())

	// An indeterminate conflict check must fail the request, never
	// optimistically book.
	assert.ErrorIs(t, err, ErrAvailabilityCheck)
	assert.Empty(t, f.payments.charged)
	assert.Nil(t, f.repo.created)
}

func TestCreatePaymentDeclined(t *testing.T) {
	f := newFixture(t)
	f.payments.chargeErr = payment.ErrDeclined

	_, err := f.svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Nil(t, f.repo.created)
}

func TestCreatePaymentUnavailable(t *testing.T) {
	f := newFixture(t)
	f.payments.chargeErr = payment.ErrUnavailable

	_, err := f.svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.Nil(t, f.repo.created)
}

func TestCreateLostRaceRefunds(t *testing.T) {
	f := newFixture(t)
	// The in-code check passed but the insert hit the exclusion constraint.
	f.repo.createErr = ErrTimeConflict

	_, err := f.svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTimeConflict)
	require.Len(t, f.payments.charged, 1)
	assert.Equal(t, []string{"pay-1"}, f.payments.refunded)
}

func TestCreateContestedSlot(t *testing.T) {
	f := newFixture(t)
	f.svc.locker = deniedLocker{}

	_, err := f.svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotContested)
	assert.Empty(t, f.payments.charged)
}

func TestCreateRoomChecks(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.room = nil
		f.rooms.err = errors.New("no rows")

		_, err := f.svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("inactive room", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.room.IsActive = false

		_, err := f.svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrRoomInactive)
	})

	t.Run("no schedule", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.room.Schedule = nil

		_, err := f.svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrNoSchedule)
	})
}

func TestAvailability(t *testing.T) {
	t.Run("open day with one booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.bookings = []*Booking{{ID: "b-0", StartTime: "10:00", DurationHours: 2}}

		day, err := f.svc.Availability(context.Background(), "room-1", "2026-09-01")
		require.NoError(t, err)

		assert.Empty(t, day.Reason)
		assert.Equal(t, "09:00", day.Open)
		assert.Equal(t, "18:00", day.Close)
		require.Len(t, day.Slots, 9)

		bySlot := map[string]Slot{}
		for _, s := range day.Slots {
			bySlot[s.Start] = s
		}
		assert.True(t, bySlot["09:00"].Available)
		assert.False(t, bySlot["10:00"].Available)
		assert.Equal(t, "time_conflict", bySlot["10:00"].Reason)
		assert.False(t, bySlot["11:00"].Available)
		assert.True(t, bySlot["12:00"].Available)
	})

	t.Run("closed weekday", func(t *testing.T) {
		f := newFixture(t)

		day, err := f.svc.Availability(context.Background(), "room-1", "2026-09-06") // Sunday
		require.NoError(t, err)
		assert.Equal(t, "not_working_day", day.Reason)
		assert.Empty(t, day.Slots)
	})

	t.Run("holiday", func(t *testing.T) {
		f := newFixture(t)

		day, err := f.svc.Availability(context.Background(), "room-1", "2026-09-07")
		require.NoError(t, err)
		assert.Equal(t, "holiday", day.Reason)
	})

	t.Run("no schedule", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.room.Schedule = nil

		day, err := f.svc.Availability(context.Background(), "room-1", "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, "no_schedule", day.Reason)
	})

	t.Run("fetch failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.listErr = errors.New("connection refused")

		_, err := f.svc.Availability(context.Background(), "room-1", "2026-09-01")
		assert.ErrorIs(t, err, ErrAvailabilityCheck)
	})
}

func TestUpdateStatus(t *testing.T) {
	seed := func(f *fixture, status Status) {
		f.repo.bookings = []*Booking{{
			ID: "b-1", RoomID: "room-1", UserID: "user-1",
			Status: status, PaymentRef: "pay-1",
		}}
	}

	t.Run("owner starts session", func(t *testing.T) {
		f := newFixture(t)
		seed(f, StatusUpcoming)

		b, err := f.svc.UpdateStatus(context.Background(), "user-1", "b-1", StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, b.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		f := newFixture(t)
		seed(f, StatusCompleted)

		_, err := f.svc.UpdateStatus(context.Background(), "user-1", "b-1", StatusInProgress)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("stranger denied", func(t *testing.T) {
		f := newFixture(t)
		seed(f, StatusUpcoming)

		_, err := f.svc.UpdateStatus(context.Background(), "someone-else", "b-1", StatusInProgress)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		seed(f, StatusUpcoming)

		_, err := f.svc.UpdateStatus(context.Background(), "user-1", "b-1", Status("paused"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels and is refunded", func(t *testing.T) {
		f := newFixture(t)
		f.repo.bookings = []*Booking{{
			ID: "b-1", RoomID: "room-1", UserID: "user-1",
			Status: StatusUpcoming, PaymentRef: "pay-1",
		}}

		b, err := f.svc.Cancel(context.Background(), "user-1", "b-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
		assert.Equal(t, []string{"pay-1"}, f.payments.refunded)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newFixture(t)
		f.repo.bookings = []*Booking{{
			ID: "b-1", RoomID: "room-1", UserID: "user-1", Status: StatusCancelled,
		}}

		_, err := f.svc.Cancel(context.Background(), "user-1", "b-1")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, f.payments.refunded)
	})
}
