package schedule

import (
	"context"
	"time"
)

type Service interface {
	GetWeeklySchedule(ctx context.Context, hostID string) (WeeklySchedule, error)
	ReplaceWeeklySchedule(ctx context.Context, hostID string, ws WeeklySchedule) error
	ListDateExceptions(ctx context.Context, hostID string, from, to time.Time) ([]DateException, error)
	PutDateException(ctx context.Context, hostID string, exc DateException) error
	DeleteDateException(ctx context.Context, hostID string, date time.Time) error

	// OpenIntervals resolves the open availability windows for every civil
	// date in [from, to] (inclusive, midnight-UTC date values), keyed by
	// "YYYY-MM-DD". Dates with no open time are absent from the map.
	OpenIntervals(ctx context.Context, hostID, timezone string, from, to time.Time) (map[string][]OpenInterval, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetWeeklySchedule(ctx context.Context, hostID string) (WeeklySchedule, error) {
	return s.repo.GetWeeklySchedule(ctx, hostID)
}

func (s *service) ReplaceWeeklySchedule(ctx context.Context, hostID string, ws WeeklySchedule) error {
	// The per-day invariant is enforced here, at the write boundary. The
	// resolver trusts stored data and treats violations as corruption.
	if err := ws.Validate(); err != nil {
		return err
	}
	return s.repo.ReplaceWeeklySchedule(ctx, hostID, ws)
}

func (s *service) ListDateExceptions(ctx context.Context, hostID string, from, to time.Time) ([]DateException, error) {
	return s.repo.GetDateExceptions(ctx, hostID, from, to)
}

func (s *service) PutDateException(ctx context.Context, hostID string, exc DateException) error {
	if err := exc.Validate(); err != nil {
		return err
	}
	return s.repo.PutDateException(ctx, hostID, exc)
}

func (s *service) DeleteDateException(ctx context.Context, hostID string, date time.Time) error {
	return s.repo.DeleteDateException(ctx, hostID, date)
}

func (s *service) OpenIntervals(ctx context.Context, hostID, timezone string, from, to time.Time) (map[string][]OpenInterval, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return nil, err
	}

	week, err := s.repo.GetWeeklySchedule(ctx, hostID)
	if err != nil {
		return nil, err
	}

	exceptions, err := s.repo.GetDateExceptions(ctx, hostID, from, to)
	if err != nil {
		return nil, err
	}
	excByDate := make(map[string]*DateException, len(exceptions))
	for i := range exceptions {
		excByDate[exceptions[i].Date.Format(time.DateOnly)] = &exceptions[i]
	}

	out := make(map[string][]OpenInterval)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		intervals, err := ResolveDay(loc, d, week, excByDate[key])
		if err != nil {
			return nil, err
		}
		if len(intervals) > 0 {
			out[key] = intervals
		}
	}
	return out, nil
}
