package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Host, error)
	GetBySlug(ctx context.Context, slug string) (*Host, error)
	Update(ctx context.Context, h *Host) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Host, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*Host, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Host, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "email", "slug", "timezone", "created_at", "updated_at",
	).
		From("public.hosts").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get host query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var h Host
	if err := row.Scan(&h.ID, &h.Name, &h.Email, &h.Slug, &h.Timezone, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get host failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) Update(ctx context.Context, h *Host) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hosts").
		Set("name", h.Name).
		Set("timezone", h.Timezone).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update host query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update host failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
