package bookingtype

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

type Repository interface {
	Create(ctx context.Context, bt *BookingType) error
	GetByID(ctx context.Context, id string) (*BookingType, error)
	GetBySlug(ctx context.Context, slug string) (*BookingType, error)
	List(ctx context.Context, filter Filter) ([]*BookingType, int, error)
	Update(ctx context.Context, bt *BookingType) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const columns = "id, host_id, name, slug, duration_min, buffer_before, buffer_after, is_active, created_at, updated_at"

func scanBookingType(row pgx.Row) (*BookingType, error) {
	var bt BookingType
	if err := row.Scan(
		&bt.ID, &bt.HostID, &bt.Name, &bt.Slug,
		&bt.DurationMinutes, &bt.BufferBeforeMinutes, &bt.BufferAfterMinutes,
		&bt.Active, &bt.CreatedAt, &bt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &bt, nil
}

func (r *pgxRepository) Create(ctx context.Context, bt *BookingType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking_types").
		Columns("host_id", "name", "slug", "duration_min", "buffer_before", "buffer_after", "is_active").
		Values(bt.HostID, bt.Name, bt.Slug, bt.DurationMinutes, bt.BufferBeforeMinutes, bt.BufferAfterMinutes, bt.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking type query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&bt.ID, &bt.CreatedAt, &bt.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("create booking type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*BookingType, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*BookingType, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*BookingType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(columns).
		From("public.booking_types").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking type query failed: %w", err)
	}

	bt, err := scanBookingType(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking type failed: %w", err)
	}
	return bt, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*BookingType, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"id", "host_id", "name", "slug", "duration_min", "buffer_before", "buffer_after",
		"is_active", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.booking_types")

	if filter.HostID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"host_id": filter.HostID})
	}

	queryBuilder = queryBuilder.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list booking types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list booking types failed: %w", err)
	}
	defer rows.Close()

	var items []*BookingType
	var total int
	for rows.Next() {
		var bt BookingType
		if err := rows.Scan(
			&bt.ID, &bt.HostID, &bt.Name, &bt.Slug,
			&bt.DurationMinutes, &bt.BufferBeforeMinutes, &bt.BufferAfterMinutes,
			&bt.Active, &bt.CreatedAt, &bt.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking type failed: %w", err)
		}
		items = append(items, &bt)
	}

	return items, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, bt *BookingType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.booking_types").
		Set("name", bt.Name).
		Set("duration_min", bt.DurationMinutes).
		Set("buffer_before", bt.BufferBeforeMinutes).
		Set("buffer_after", bt.BufferAfterMinutes).
		Set("is_active", bt.Active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": bt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
