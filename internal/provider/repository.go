package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access for providers and their memberships.
type Repository interface {
	Create(ctx context.Context, p *Provider) error
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Update(ctx context.Context, p *Provider) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, providerID, userID, role string) error
	RemoveMember(ctx context.Context, providerID, userID string) error
	GetMember(ctx context.Context, providerID, userID string) (*Member, error)
	UpdateMemberRole(ctx context.Context, providerID, userID, role string) error
	ListMembers(ctx context.Context, providerID string) ([]*Member, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Provider) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.providers").
		Columns("name", "contact_email", "is_active").
		Values(p.Name, p.ContactEmail, p.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create provider query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	const query = `
		SELECT id, name, contact_email, created_at, is_active
		FROM public.providers
		WHERE id = $1
	`

	var p Provider
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ContactEmail, &p.CreatedAt, &p.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := psql.Select(
		"id", "name", "contact_email", "created_at", "is_active",
		"count(*) OVER() AS total_count",
	).
		From("public.providers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list providers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers failed: %w", err)
	}
	defer rows.Close()

	var providers []*Provider
	var total int

	for rows.Next() {
		var p Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactEmail, &p.CreatedAt, &p.IsActive, &total); err != nil {
			return nil, 0, fmt.Errorf("scan provider failed: %w", err)
		}
		providers = append(providers, &p)
	}

	return providers, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Provider) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.providers").
		Set("name", p.Name).
		Set("contact_email", p.ContactEmail).
		Set("is_active", p.IsActive).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update provider query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update provider failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddMember(ctx context.Context, providerID, userID, role string) error {
	const query = `
		INSERT INTO public.provider_members (provider_id, user_id, role)
		VALUES ($1, $2, $3)
	`

	if _, err := r.pool.Exec(ctx, query, providerID, userID, role); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyMember
		}
		return fmt.Errorf("add provider member failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) RemoveMember(ctx context.Context, providerID, userID string) error {
	ct, err := r.pool.Exec(
		ctx,
		`DELETE FROM public.provider_members WHERE provider_id = $1 AND user_id = $2`,
		providerID, userID,
	)
	if err != nil {
		return fmt.Errorf("remove provider member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberMissing
	}
	return nil
}

func (r *pgxRepository) GetMember(ctx context.Context, providerID, userID string) (*Member, error) {
	const query = `
		SELECT pm.user_id, u.email, u.display_name, pm.role
		FROM public.provider_members pm
		JOIN public.users u ON pm.user_id = u.id
		WHERE pm.provider_id = $1 AND pm.user_id = $2
	`

	var m Member
	if err := r.pool.QueryRow(ctx, query, providerID, userID).Scan(
		&m.UserID, &m.Email, &m.DisplayName, &m.Role,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberMissing
		}
		return nil, fmt.Errorf("get provider member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) UpdateMemberRole(ctx context.Context, providerID, userID, role string) error {
	ct, err := r.pool.Exec(
		ctx,
		`UPDATE public.provider_members SET role = $1 WHERE provider_id = $2 AND user_id = $3`,
		role, providerID, userID,
	)
	if err != nil {
		return fmt.Errorf("update provider member role failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberMissing
	}
	return nil
}

func (r *pgxRepository) ListMembers(ctx context.Context, providerID string) ([]*Member, error) {
	const query = `
		SELECT pm.user_id, u.email, u.display_name, pm.role
		FROM public.provider_members pm
		JOIN public.users u ON pm.user_id = u.id
		WHERE pm.provider_id = $1
		ORDER BY pm.role, u.email
	`

	rows, err := r.pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list provider members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role); err != nil {
			return nil, fmt.Errorf("scan provider member failed: %w", err)
		}
		members = append(members, &m)
	}

	return members, nil
}
