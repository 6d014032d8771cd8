package space

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for spaces.
type Repository interface {
	Create(ctx context.Context, sp *Space) error
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, sp *Space) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.spaces").
		Columns("provider_id", "name", "address", "description", "longitude", "latitude", "is_active").
		Values(sp.ProviderID, sp.Name, sp.Address, sp.Description, sp.Longitude, sp.Latitude, sp.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create space query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&sp.ID, &sp.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Space, error) {
	const query = `
		SELECT id, provider_id, name, address, description, longitude, latitude, is_active, created_at
		FROM public.spaces
		WHERE id = $1
	`

	var sp Space
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sp.ID, &sp.ProviderID, &sp.Name, &sp.Address, &sp.Description,
		&sp.Longitude, &sp.Latitude, &sp.IsActive, &sp.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space failed: %w", err)
	}
	return &sp, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "provider_id", "name", "address", "description",
		"longitude", "latitude", "is_active", "created_at",
		"count(*) OVER() AS total_count",
	).From("public.spaces")

	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"provider_id": filter.ProviderID})
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list spaces failed: %w", err)
	}
	defer rows.Close()

	var spaces []*Space
	var total int

	for rows.Next() {
		var sp Space
		if err := rows.Scan(
			&sp.ID, &sp.ProviderID, &sp.Name, &sp.Address, &sp.Description,
			&sp.Longitude, &sp.Latitude, &sp.IsActive, &sp.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan space failed: %w", err)
		}
		spaces = append(spaces, &sp)
	}

	return spaces, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.spaces").
		Set("name", sp.Name).
		Set("address", sp.Address).
		Set("description", sp.Description).
		Set("longitude", sp.Longitude).
		Set("latitude", sp.Latitude).
		Set("is_active", sp.IsActive).
		Where(squirrel.Eq{"id": sp.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update space query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.spaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
