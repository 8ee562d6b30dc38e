package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	"github.com/gravitymeet/scheduling-backend/internal/schedule"
)

const (
	testHostID = "8e5a2c1e-6f2d-4a7b-9c3d-1f0e2a3b4c5d"
	testSlug   = "intro-call"
)

type fakeHosts struct {
	host *host.Host
}

func (f *fakeHosts) GetByID(_ context.Context, id string) (*host.Host, error) {
	if f.host == nil || f.host.ID != id {
		return nil, host.ErrNotFound
	}
	return f.host, nil
}

func (f *fakeHosts) GetBySlug(_ context.Context, slug string) (*host.Host, error) {
	if f.host == nil || f.host.Slug != slug {
		return nil, host.ErrNotFound
	}
	return f.host, nil
}

func (f *fakeHosts) Update(context.Context, string, host.UpdateRequest) (*host.Host, error) {
	panic("not used")
}

type fakeTypes struct {
	bt *bookingtype.BookingType
}

func (f *fakeTypes) GetActiveBySlug(_ context.Context, slug string) (*bookingtype.BookingType, error) {
	if f.bt == nil || f.bt.Slug != slug || !f.bt.Active {
		return nil, bookingtype.ErrNotFound
	}
	return f.bt, nil
}

func (f *fakeTypes) Create(context.Context, bookingtype.CreateRequest) (*bookingtype.BookingType, error) {
	panic("not used")
}

func (f *fakeTypes) GetByID(context.Context, string) (*bookingtype.BookingType, error) {
	panic("not used")
}

func (f *fakeTypes) List(context.Context, bookingtype.Filter) ([]*bookingtype.BookingType, int, error) {
	panic("not used")
}

func (f *fakeTypes) Update(context.Context, string, string, bookingtype.UpdateRequest) (*bookingtype.BookingType, error) {
	panic("not used")
}

func (f *fakeTypes) Deactivate(context.Context, string, string) (*bookingtype.BookingType, error) {
	panic("not used")
}

type fakeSchedules struct {
	week schedule.WeeklySchedule
	exc  map[string]*schedule.DateException
	tz   string
}

func (f *fakeSchedules) OpenIntervals(_ context.Context, _ string, timezone string, from, to time.Time) (map[string][]schedule.OpenInterval, error) {
	loc, err := schedule.LoadZone(timezone)
	if err != nil {
		return nil, err
	}
	out := map[string][]schedule.OpenInterval{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		intervals, err := schedule.ResolveDay(loc, d, f.week, f.exc[d.Format(time.DateOnly)])
		if err != nil {
			return nil, err
		}
		if len(intervals) > 0 {
			out[d.Format(time.DateOnly)] = intervals
		}
	}
	return out, nil
}

func (f *fakeSchedules) GetWeeklySchedule(context.Context, string) (schedule.WeeklySchedule, error) {
	panic("not used")
}

func (f *fakeSchedules) ReplaceWeeklySchedule(context.Context, string, schedule.WeeklySchedule) error {
	panic("not used")
}

func (f *fakeSchedules) ListDateExceptions(context.Context, string, time.Time, time.Time) ([]schedule.DateException, error) {
	panic("not used")
}

func (f *fakeSchedules) PutDateException(context.Context, string, schedule.DateException) error {
	panic("not used")
}

func (f *fakeSchedules) DeleteDateException(context.Context, string, time.Time) error {
	panic("not used")
}

type fakeBusy struct {
	intervals []Interval
}

func (f *fakeBusy) ListBusy(context.Context, string, time.Time, time.Time) ([]Interval, error) {
	return f.intervals, nil
}

func newTestService(week schedule.WeeklySchedule, exc map[string]*schedule.DateException, busy []Interval) *service {
	return &service{
		hosts: &fakeHosts{host: &host.Host{
			ID:       testHostID,
			Name:     "Amina",
			Slug:     "amina",
			Timezone: "Asia/Dubai",
		}},
		types: &fakeTypes{bt: &bookingtype.BookingType{
			ID:              "b7f3d9a0-1c2b-4d5e-8f90-a1b2c3d4e5f6",
			HostID:          testHostID,
			Name:            "Intro Call",
			Slug:            testSlug,
			DurationMinutes: 30,
			Active:          true,
		}},
		schedules: &fakeSchedules{week: week, exc: exc},
		busy:      &fakeBusy{intervals: busy},
		leadTime:  30 * time.Minute,
		now:       func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestAvailableSlots(t *testing.T) {
	week := schedule.WeeklySchedule{
		time.Monday: {
			{Start: "09:00", End: "12:00"},
			{Start: "13:00", End: "18:00"},
		},
	}
	monday := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("split day yields both blocks in UTC", func(t *testing.T) {
		svc := newTestService(week, nil, nil)
		slots, err := svc.AvailableSlots(context.Background(), testSlug, monday)
		require.NoError(t, err)

		// Dubai 09:00-12:00 is 05:00-08:00Z: 6 slots; 13:00-18:00 is
		// 09:00-14:00Z: 10 slots.
		require.Len(t, slots, 16)
		assert.Equal(t, time.Date(2026, 6, 15, 5, 0, 0, 0, time.UTC), slots[0].Start)
		assert.Equal(t, time.Date(2026, 6, 15, 7, 30, 0, 0, time.UTC), slots[5].Start)
		assert.Equal(t, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC), slots[6].Start)
		assert.Equal(t, time.Date(2026, 6, 15, 13, 30, 0, 0, time.UTC), slots[15].Start)
	})

	t.Run("booked slots are filtered out", func(t *testing.T) {
		busy := []Interval{{
			Start: time.Date(2026, 6, 15, 5, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 6, 15, 6, 0, 0, 0, time.UTC),
		}}
		svc := newTestService(week, nil, busy)
		slots, err := svc.AvailableSlots(context.Background(), testSlug, monday)
		require.NoError(t, err)
		require.Len(t, slots, 15)
		assert.Equal(t, time.Date(2026, 6, 15, 6, 0, 0, 0, time.UTC), slots[1].Start)
	})

	t.Run("closed exception empties the day", func(t *testing.T) {
		exc := map[string]*schedule.DateException{
			"2026-06-15": {Date: monday, Closed: true},
		}
		svc := newTestService(week, exc, nil)
		slots, err := svc.AvailableSlots(context.Background(), testSlug, monday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc := newTestService(week, nil, nil)
		_, err := svc.AvailableSlots(context.Background(), "nope", monday)
		assert.ErrorIs(t, err, bookingtype.ErrNotFound)
	})
}

func TestAvailableDays(t *testing.T) {
	week := schedule.WeeklySchedule{
		time.Monday: {{Start: "09:00", End: "10:00"}},
	}

	t.Run("only weekdays with free slots appear, sorted", func(t *testing.T) {
		svc := newTestService(week, nil, nil)
		days, err := svc.AvailableDays(context.Background(), testSlug, 2026, time.June)
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-06-01", "2026-06-08", "2026-06-15", "2026-06-22", "2026-06-29"}, days)
	})

	t.Run("fully booked day drops out", func(t *testing.T) {
		busy := []Interval{{
			Start: time.Date(2026, 6, 8, 5, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 6, 8, 6, 0, 0, 0, time.UTC),
		}}
		svc := newTestService(week, nil, busy)
		days, err := svc.AvailableDays(context.Background(), testSlug, 2026, time.June)
		require.NoError(t, err)
		assert.NotContains(t, days, "2026-06-08")
		assert.Contains(t, days, "2026-06-15")
	})
}

func TestValidateSlotStart(t *testing.T) {
	week := schedule.WeeklySchedule{
		time.Monday: {{Start: "09:00", End: "12:00"}},
	}
	svc := newTestService(week, nil, nil)
	bt := svc.types.(*fakeTypes).bt
	owner := svc.hosts.(*fakeHosts).host

	t.Run("valid slot start passes", func(t *testing.T) {
		start := time.Date(2026, 6, 15, 5, 30, 0, 0, time.UTC)
		assert.NoError(t, svc.ValidateSlotStart(context.Background(), bt, owner, start))
	})

	t.Run("off-grid start is rejected", func(t *testing.T) {
		start := time.Date(2026, 6, 15, 5, 10, 0, 0, time.UTC)
		assert.ErrorIs(t, svc.ValidateSlotStart(context.Background(), bt, owner, start), ErrSlotUnavailable)
	})

	t.Run("start outside open hours is rejected", func(t *testing.T) {
		start := time.Date(2026, 6, 15, 15, 0, 0, 0, time.UTC)
		assert.ErrorIs(t, svc.ValidateSlotStart(context.Background(), bt, owner, start), ErrSlotUnavailable)
	})

	t.Run("closed weekday is rejected", func(t *testing.T) {
		start := time.Date(2026, 6, 16, 5, 30, 0, 0, time.UTC)
		assert.ErrorIs(t, svc.ValidateSlotStart(context.Background(), bt, owner, start), ErrSlotUnavailable)
	})
}
