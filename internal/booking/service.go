package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deskhive/interview-booking-backend/internal/hold"
	"github.com/deskhive/interview-booking-backend/internal/metrics"
	"github.com/deskhive/interview-booking-backend/internal/payment"
	"github.com/deskhive/interview-booking-backend/internal/room"
	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

// RoomDirectory is the slice of the room module the booking flow needs.
type RoomDirectory interface {
	GetByID(ctx context.Context, id string) (*room.Room, error)
}

// ProviderRoles answers membership questions for permission checks.
type ProviderRoles interface {
	IsManagerOrAbove(ctx context.Context, providerID, userID string) (bool, error)
}

// CreateRequest carries everything needed to book a room.
type CreateRequest struct {
	RoomID         string
	UserID         string
	CandidateName  string
	CandidateEmail string
	Date           string // "YYYY-MM-DD"
	StartTime      string // "HH:MM"
	DurationHours  int
	MethodToken    string
}

// Slot is one bookable hour in an availability report.
type Slot struct {
	Start     string
	Available bool
	// Reason explains an unavailable slot: "time_conflict" or
	// "outside_hours". Empty when the slot is free.
	Reason string
}

// DayAvailability is the hour-by-hour view of a room for one date.
type DayAvailability struct {
	RoomID string
	Date   string
	// Reason is set when the whole day is closed ("not_working_day",
	// "holiday", "no_schedule"); Slots is empty in that case.
	Reason string
	Open   string
	Close  string
	Slots  []Slot
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, actorID, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Availability(ctx context.Context, roomID, date string) (*DayAvailability, error)
	UpdateStatus(ctx context.Context, actorID, id string, status Status) (*Booking, error)
	Cancel(ctx context.Context, actorID, id string) (*Booking, error)
}

type service struct {
	repo      Repository
	rooms     RoomDirectory
	providers ProviderRoles
	locker    hold.Locker
	payments  payment.Collaborator
	holdTTL   time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

func NewService(
	repo Repository,
	rooms RoomDirectory,
	providers ProviderRoles,
	locker hold.Locker,
	payments payment.Collaborator,
	holdTTL time.Duration,
	logger zerolog.Logger,
) Service {
	if holdTTL <= 0 {
		holdTTL = 30 * time.Second
	}
	return &service{
		repo:      repo,
		rooms:     rooms,
		providers: providers,
		locker:    locker,
		payments:  payments,
		holdTTL:   holdTTL,
		now:       time.Now,
		logger:    logger.With().Str("component", "booking").Logger(),
	}
}

func reasonError(r schedule.Reason) error {
	switch r {
	case schedule.NotWorkingDay:
		return ErrNotWorkingDay
	case schedule.Holiday:
		return ErrHoliday
	case schedule.OutsideHours:
		return ErrOutsideHours
	default:
		return nil
	}
}

// Create runs the full booking sequence: input validation, room lookup,
// schedule evaluation, slot hold, fresh conflict re-check, payment, and
// finally the insert. The charge happens only after the slot looks free,
// and is refunded if the insert still loses the race to the exclusion
// constraint.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.CandidateName) == "" || req.DurationHours < 1 {
		return nil, ErrInvalidInput
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}
	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidInput
	}

	today, _ := schedule.ParseDate(s.now().Format("2006-01-02"))
	if date.Before(today) {
		return nil, ErrDatePast
	}

	rm, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if !rm.IsActive {
		return nil, ErrRoomInactive
	}
	if rm.Schedule == nil {
		return nil, ErrNoSchedule
	}
	if req.DurationHours > rm.Schedule.MaxDurationHours {
		return nil, ErrDurationTooLong
	}

	metrics.IncAvailabilityCheck()
	if reason := schedule.Evaluate(rm.Schedule, date, start, req.DurationHours); reason != schedule.OK {
		metrics.IncBookingRejected(reason.String())
		return nil, reasonError(reason)
	}

	newStart := int(start)
	newEnd := newStart + req.DurationHours*60

	// Hold the slot before the conflict re-check so two identical requests
	// cannot both observe it free and both reach payment.
	key := hold.SlotKey(req.RoomID, req.Date, newStart, newEnd)
	acquired, err := s.locker.Acquire(ctx, key, s.holdTTL)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("slot hold failed")
		return nil, ErrAvailabilityCheck
	}
	if !acquired {
		metrics.IncBookingRejected("slot_contested")
		return nil, ErrSlotContested
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("slot hold release failed")
		}
	}()

	// Always a fresh read; a stale booking list here would approve a slot
	// that was just taken.
	existing, err := s.repo.ListForRoomDate(ctx, req.RoomID, date)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", req.RoomID).Msg("conflict check fetch failed")
		return nil, ErrAvailabilityCheck
	}

	conflict, err := HasConflict(existing, newStart, newEnd)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", req.RoomID).Msg("conflict check failed")
		return nil, ErrAvailabilityCheck
	}
	if conflict {
		metrics.IncBookingRejected("time_conflict")
		return nil, ErrTimeConflict
	}

	amount := rm.HourlyRateCents * int64(req.DurationHours)
	receipt, err := s.payments.Charge(ctx, payment.ChargeRequest{
		UserID:      req.UserID,
		RoomID:      req.RoomID,
		AmountCents: amount,
		Currency:    "USD",
		Description: fmt.Sprintf("interview room %s on %s %s", rm.Name, req.Date, req.StartTime),
		MethodToken: req.MethodToken,
	})
	if err != nil {
		metrics.IncPaymentFailure()
		if errors.Is(err, payment.ErrDeclined) {
			return nil, ErrPaymentDeclined
		}
		s.logger.Error().Err(err).Str("room_id", req.RoomID).Msg("charge failed")
		return nil, ErrPaymentFailed
	}

	b := &Booking{
		RoomID:         req.RoomID,
		RoomName:       rm.Name,
		SpaceID:        rm.SpaceID,
		SpaceName:      rm.SpaceName,
		UserID:         req.UserID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: strings.TrimSpace(req.CandidateEmail),
		Date:           date,
		StartTime:      start.String(),
		DurationHours:  req.DurationHours,
		Status:         StatusUpcoming,
		AmountCents:    amount,
		PaymentRef:     receipt.Reference,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		// The charge already went through; undo it before reporting.
		if refundErr := s.payments.Refund(context.WithoutCancel(ctx), receipt.Reference); refundErr != nil {
			s.logger.Error().Err(refundErr).
				Str("payment_ref", receipt.Reference).
				Msg("refund after failed insert did not go through")
		}
		if errors.Is(err, ErrTimeConflict) {
			metrics.IncBookingRejected("time_conflict")
			return nil, ErrTimeConflict
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Str("booking_id", b.ID).
		Str("room_id", b.RoomID).
		Str("date", req.Date).
		Str("start", b.StartTime).
		Int("duration_hours", b.DurationHours).
		Msg("booking created")

	return b, nil
}

// Availability reports each whole-hour slot of the room's open window for
// one date, marking occupied and out-of-window hours.
func (s *service) Availability(ctx context.Context, roomID, dateStr string) (*DayAvailability, error) {
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidInput
	}

	rm, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	out := &DayAvailability{RoomID: roomID, Date: dateStr}

	if rm.Schedule == nil {
		out.Reason = "no_schedule"
		return out, nil
	}

	metrics.IncAvailabilityCheck()
	if !rm.Schedule.WorkingDays[schedule.WeekdayName(date)] {
		out.Reason = schedule.NotWorkingDay.String()
		return out, nil
	}
	for _, h := range rm.Schedule.Holidays {
		if h == dateStr {
			out.Reason = schedule.Holiday.String()
			return out, nil
		}
	}

	open, close, err := rm.Schedule.Window()
	if err != nil {
		return nil, ErrAvailabilityCheck
	}
	out.Open = open.String()
	out.Close = close.String()

	existing, err := s.repo.ListForRoomDate(ctx, roomID, date)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", roomID).Msg("availability fetch failed")
		return nil, ErrAvailabilityCheck
	}

	for m := int(open); m+60 <= int(close); m += 60 {
		slot := Slot{Start: schedule.TimeOfDay(m).String(), Available: true}
		conflict, err := HasConflict(existing, m, m+60)
		if err != nil {
			return nil, ErrAvailabilityCheck
		}
		if conflict {
			slot.Available = false
			slot.Reason = "time_conflict"
		}
		out.Slots = append(out.Slots, slot)
	}

	return out, nil
}

func (s *service) GetByID(ctx context.Context, actorID, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// authorize allows the booking's owner and managers of the room's provider.
func (s *service) authorize(ctx context.Context, actorID string, b *Booking) error {
	if actorID == b.UserID {
		return nil
	}
	rm, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return ErrPermissionDenied
	}
	ok, err := s.providers.IsManagerOrAbove(ctx, rm.ProviderID, actorID)
	if err != nil || !ok {
		return ErrPermissionDenied
	}
	return nil
}

// validTransition encodes the booking lifecycle:
// upcoming -> in_progress -> completed, with cancellation possible until
// the session completes.
func validTransition(from, to Status) bool {
	switch from {
	case StatusUpcoming:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, status Status) (*Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, b); err != nil {
		return nil, err
	}
	if !validTransition(b.Status, status) {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.logger.Info().Str("booking_id", id).Str("status", string(status)).Msg("booking status updated")
	return b, nil
}

// Cancel moves an upcoming booking to cancelled and refunds the charge.
// Cancelling frees the slot immediately; the exclusion constraint skips
// cancelled rows.
func (s *service) Cancel(ctx context.Context, actorID, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, b); err != nil {
		return nil, err
	}
	if !validTransition(b.Status, StatusCancelled) {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled

	if b.PaymentRef != "" {
		if err := s.payments.Refund(ctx, b.PaymentRef); err != nil {
			s.logger.Error().Err(err).
				Str("booking_id", id).
				Str("payment_ref", b.PaymentRef).
				Msg("refund on cancel failed")
		}
	}

	s.logger.Info().Str("booking_id", id).Msg("booking cancelled")
	return b, nil
}
