package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gravitymeet/scheduling-backend/internal/outbox"
)

type Repository interface {
	// InsertIfFree atomically inserts a scheduled appointment and queues its
	// BookingCreated event. The appointments table carries an exclusion
	// constraint on (host_id, [start_time, end_time)) filtered to
	// non-terminal statuses; when a concurrent booking wins the slot the
	// insert fails with ErrSlotConflict and nothing is written.
	InsertIfFree(ctx context.Context, a *Appointment, event BookingCreated) error

	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)
	// ListNonTerminal returns the appointments that block slots for the host
	// in the given window (overlap semantics, half-open).
	ListNonTerminal(ctx context.Context, hostID string, from, to time.Time) ([]*Appointment, error)
	UpdateStatus(ctx context.Context, a *Appointment) error
}

type pgxRepository struct {
	pool   *pgxpool.Pool
	events *outbox.Repository
}

func NewPgxRepository(pool *pgxpool.Pool, events *outbox.Repository) Repository {
	return &pgxRepository{pool: pool, events: events}
}

func (r *pgxRepository) InsertIfFree(ctx context.Context, a *Appointment, event BookingCreated) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.appointments").
		Columns(
			"host_id", "booking_type_id", "start_time", "end_time", "status",
			"guest_name", "guest_email", "guest_phone", "guest_company", "notes",
		).
		Values(
			a.HostID, a.BookingTypeID, a.StartTime, a.EndTime, a.Status,
			a.Guest.Name, a.Guest.Email, a.Guest.Phone, a.Guest.Company, a.Guest.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert appointment query failed: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotConflict
		}
		return fmt.Errorf("insert appointment failed: %w", err)
	}

	event.AppointmentID = a.ID
	if err := r.events.InsertTx(ctx, tx, outbox.EventTypeBookingCreated, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const selectColumns = `a.id, a.host_id, a.booking_type_id, bt.name,
a.start_time, a.end_time, a.status,
a.guest_name, a.guest_email, a.guest_phone, a.guest_company, a.notes,
a.cancelled_by, a.cancellation_reason, a.created_at, a.updated_at`

func scanAppointment(row pgx.Row, extra ...any) (*Appointment, error) {
	var a Appointment
	var phone, company, notes, cancelledBy, reason *string
	dest := []any{
		&a.ID, &a.HostID, &a.BookingTypeID, &a.BookingTypeName,
		&a.StartTime, &a.EndTime, &a.Status,
		&a.Guest.Name, &a.Guest.Email, &phone, &company, &notes,
		&cancelledBy, &reason, &a.CreatedAt, &a.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if phone != nil {
		a.Guest.Phone = *phone
	}
	if company != nil {
		a.Guest.Company = *company
	}
	if notes != nil {
		a.Guest.Notes = *notes
	}
	if cancelledBy != nil {
		a.CancelledBy = *cancelledBy
	}
	if reason != nil {
		a.CancellationReason = *reason
	}
	return &a, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns).
		From("public.appointments a").
		Join("public.booking_types bt ON a.booking_type_id = bt.id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get appointment query failed: %w", err)
	}

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(selectColumns + ", count(*) OVER() as total_count").
		From("public.appointments a").
		Join("public.booking_types bt ON a.booking_type_id = bt.id")

	if filter.HostID != "" {
		query = query.Where(squirrel.Eq{"a.host_id": filter.HostID})
	}
	if filter.BookingTypeID != "" {
		query = query.Where(squirrel.Eq{"a.booking_type_id": filter.BookingTypeID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"a.status": filter.Status})
	}
	// Window filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"a.end_time": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"a.start_time": filter.To})
	}

	orderDir := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		orderDir = "ASC"
	}
	query = query.OrderBy("a.start_time " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list appointments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var appts []*Appointment
	var total int
	for rows.Next() {
		a, err := scanAppointment(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan appointment failed: %w", err)
		}
		appts = append(appts, a)
	}

	return appts, total, rows.Err()
}

func (r *pgxRepository) ListNonTerminal(ctx context.Context, hostID string, from, to time.Time) ([]*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns).
		From("public.appointments a").
		Join("public.booking_types bt ON a.booking_type_id = bt.id").
		Where(squirrel.Eq{"a.host_id": hostID}).
		Where(squirrel.Eq{"a.status": NonTerminalStatuses}).
		Where(squirrel.Lt{"a.start_time": to}).
		Where(squirrel.Gt{"a.end_time": from}).
		OrderBy("a.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blocking appointments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocking appointments failed: %w", err)
	}
	defer rows.Close()

	var appts []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment failed: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("status", a.Status).
		Set("cancelled_by", nullable(a.CancelledBy)).
		Set("cancellation_reason", nullable(a.CancellationReason)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update appointment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update appointment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
