package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deskhive/interview-booking-backend/internal/schedule"
)

// Repository defines data access methods for rooms.
type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// marshalSchedule encodes the weekly schedule for the JSONB column.
// A nil schedule stays NULL so "no availability published" survives round trips.
func marshalSchedule(s *schedule.WeeklySchedule) (any, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal room schedule failed: %w", err)
	}
	return b, nil
}

func unmarshalSchedule(b []byte) (*schedule.WeeklySchedule, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var s schedule.WeeklySchedule
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal room schedule failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	schedJSON, err := marshalSchedule(rm.Schedule)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("space_id", "name", "capacity", "hourly_rate_cents", "amenities", "schedule", "is_active").
		Values(rm.SpaceID, rm.Name, rm.Capacity, rm.HourlyRateCents, rm.Amenities, schedJSON, rm.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT
			r.id, r.space_id, s.name, s.provider_id,
			r.name, r.capacity, r.hourly_rate_cents, r.amenities, r.schedule,
			r.is_active, r.created_at, r.updated_at
		FROM public.rooms r
		JOIN public.spaces s ON r.space_id = s.id
		WHERE r.id = $1
	`

	var rm Room
	var schedJSON []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.SpaceID, &rm.SpaceName, &rm.ProviderID,
		&rm.Name, &rm.Capacity, &rm.HourlyRateCents, &rm.Amenities, &schedJSON,
		&rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}

	sched, err := unmarshalSchedule(schedJSON)
	if err != nil {
		return nil, err
	}
	rm.Schedule = sched

	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.space_id", "s.name", "s.provider_id",
		"r.name", "r.capacity", "r.hourly_rate_cents", "r.amenities", "r.schedule",
		"r.is_active", "r.created_at", "r.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.rooms r").
		Join("public.spaces s ON r.space_id = s.id")

	if filter.SpaceID != "" {
		query = query.Where(squirrel.Eq{"r.space_id": filter.SpaceID})
	}
	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"s.provider_id": filter.ProviderID})
	}
	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"r.name": "%" + filter.Keyword + "%"})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("r.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		var schedJSON []byte
		if err := rows.Scan(
			&rm.ID, &rm.SpaceID, &rm.SpaceName, &rm.ProviderID,
			&rm.Name, &rm.Capacity, &rm.HourlyRateCents, &rm.Amenities, &schedJSON,
			&rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}

		sched, err := unmarshalSchedule(schedJSON)
		if err != nil {
			return nil, 0, err
		}
		rm.Schedule = sched

		rooms = append(rooms, &rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	schedJSON, err := marshalSchedule(rm.Schedule)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("name", rm.Name).
		Set("capacity", rm.Capacity).
		Set("hourly_rate_cents", rm.HourlyRateCents).
		Set("amenities", rm.Amenities).
		Set("schedule", schedJSON).
		Set("is_active", rm.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
