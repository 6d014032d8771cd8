package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListForRoomDate returns the non-cancelled bookings occupying a room
	// on a civil date. This is the conflict detector's input.
	ListForRoomDate(ctx context.Context, roomID string, date time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.room_id, r.name, r.space_id, s.name,
	b.user_id, u.display_name,
	b.candidate_name, b.candidate_email,
	b.date, to_char(b.start_time, 'HH24:MI'), b.duration_hours,
	b.status, b.amount_cents, b.payment_ref,
	b.created_at, b.updated_at
`

func scanBooking(row pgx.Row, dest ...any) (*Booking, error) {
	var b Booking
	fields := []any{
		&b.ID, &b.RoomID, &b.RoomName, &b.SpaceID, &b.SpaceName,
		&b.UserID, &b.UserName,
		&b.CandidateName, &b.CandidateEmail,
		&b.Date, &b.StartTime, &b.DurationHours,
		&b.Status, &b.AmountCents, &b.PaymentRef,
		&b.CreatedAt, &b.UpdatedAt,
	}
	fields = append(fields, dest...)
	if err := row.Scan(fields...); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts the booking. The bookings table carries an exclusion
// constraint over (room_id, date, occupied minute range) for non-cancelled
// rows, so a concurrent insert that slipped past the in-code conflict
// check fails here and is reported as ErrTimeConflict.
func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"room_id", "user_id", "candidate_name", "candidate_email",
			"date", "start_time", "duration_hours",
			"status", "amount_cents", "payment_ref",
		).
		Values(
			b.RoomID, b.UserID, b.CandidateName, b.CandidateEmail,
			b.Date.Format("2006-01-02"), b.StartTime, b.DurationHours,
			b.Status, b.AmountCents, b.PaymentRef,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				return ErrTimeConflict
			case pgerrcode.ForeignKeyViolation:
				return ErrRoomNotFound
			}
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.spaces s ON r.space_id = s.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.id = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.room_id", "r.name", "r.space_id", "s.name",
		"b.user_id", "u.display_name",
		"b.candidate_name", "b.candidate_email",
		"b.date", "to_char(b.start_time, 'HH24:MI')", "b.duration_hours",
		"b.status", "b.amount_cents", "b.payment_ref",
		"b.created_at", "b.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.spaces s ON r.space_id = s.id").
		Join("public.users u ON b.user_id = u.id")

	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.SpaceID != "" {
		query = query.Where(squirrel.Eq{"r.space_id": filter.SpaceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != "" {
		query = query.Where(squirrel.GtOrEq{"b.date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		query = query.Where(squirrel.LtOrEq{"b.date": filter.DateTo})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.date DESC", "b.start_time DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForRoomDate(ctx context.Context, roomID string, date time.Time) ([]*Booking, error) {
	const query = `
		SELECT b.id, to_char(b.start_time, 'HH24:MI'), b.duration_hours, b.status
		FROM public.bookings b
		WHERE b.room_id = $1
		  AND b.date = $2
		  AND b.status <> 'cancelled'
		ORDER BY b.start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list bookings for room date failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.StartTime, &b.DurationHours, &b.Status); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		b.RoomID = roomID
		b.Date = date
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.bookings SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
