package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetWeeklySchedule(ctx context.Context, hostID string) (WeeklySchedule, error)
	// ReplaceWeeklySchedule swaps the host's entire weekly schedule in one
	// transaction; the schedule is never patched row by row.
	ReplaceWeeklySchedule(ctx context.Context, hostID string, ws WeeklySchedule) error

	GetDateExceptions(ctx context.Context, hostID string, from, to time.Time) ([]DateException, error)
	PutDateException(ctx context.Context, hostID string, exc DateException) error
	DeleteDateException(ctx context.Context, hostID string, date time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetWeeklySchedule(ctx context.Context, hostID string) (WeeklySchedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("weekday", "start_time", "end_time").
		From("public.schedule_rules").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("weekday", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get weekly schedule query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get weekly schedule failed: %w", err)
	}
	defer rows.Close()

	ws := WeeklySchedule{}
	for rows.Next() {
		var weekday int16
		var tr TimeRange
		if err := rows.Scan(&weekday, &tr.Start, &tr.End); err != nil {
			return nil, fmt.Errorf("scan schedule rule failed: %w", err)
		}
		wd := time.Weekday(weekday)
		ws[wd] = append(ws[wd], tr)
	}
	return ws, rows.Err()
}

func (r *pgxRepository) ReplaceWeeklySchedule(ctx context.Context, hostID string, ws WeeklySchedule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace schedule tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("public.schedule_rules").
		Where(squirrel.Eq{"host_id": hostID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete schedule rules query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete schedule rules failed: %w", err)
	}

	insert := psql.Insert("public.schedule_rules").
		Columns("host_id", "weekday", "start_time", "end_time")
	empty := true
	for wd, ranges := range ws {
		for _, tr := range ranges {
			insert = insert.Values(hostID, int16(wd), tr.Start, tr.End)
			empty = false
		}
	}
	if !empty {
		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert schedule rules query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert schedule rules failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetDateExceptions(ctx context.Context, hostID string, from, to time.Time) ([]DateException, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("date", "is_closed", "start_time", "end_time").
		From("public.date_exceptions").
		Where(squirrel.Eq{"host_id": hostID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get date exceptions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get date exceptions failed: %w", err)
	}
	defer rows.Close()

	var out []DateException
	for rows.Next() {
		var date time.Time
		var closed bool
		var start, end *string
		if err := rows.Scan(&date, &closed, &start, &end); err != nil {
			return nil, fmt.Errorf("scan date exception failed: %w", err)
		}
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		if len(out) == 0 || !out[len(out)-1].Date.Equal(date) {
			out = append(out, DateException{Date: date, Closed: closed})
		}
		if start != nil && end != nil {
			last := &out[len(out)-1]
			last.Ranges = append(last.Ranges, TimeRange{Start: *start, End: *end})
		}
	}
	return out, rows.Err()
}

func (r *pgxRepository) PutDateException(ctx context.Context, hostID string, exc DateException) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin put exception tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("public.date_exceptions").
		Where(squirrel.Eq{"host_id": hostID, "date": exc.Date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete exception query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete exception failed: %w", err)
	}

	insert := psql.Insert("public.date_exceptions").
		Columns("host_id", "date", "is_closed", "start_time", "end_time")
	if exc.Closed || len(exc.Ranges) == 0 {
		insert = insert.Values(hostID, exc.Date, exc.Closed, nil, nil)
	} else {
		for _, tr := range exc.Ranges {
			insert = insert.Values(hostID, exc.Date, false, tr.Start, tr.End)
		}
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert exception query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// A concurrent put for the same date committed between our
			// delete and insert; the unique index rejects the stale write.
			return ErrExceptionConflict
		}
		return fmt.Errorf("insert exception failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) DeleteDateException(ctx context.Context, hostID string, date time.Time) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.date_exceptions").
		Where(squirrel.Eq{"host_id": hostID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete exception query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete exception failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrExceptionNotFound
	}
	return nil
}
