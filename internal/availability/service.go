package availability

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/apperror"
	"github.com/gravitymeet/scheduling-backend/internal/schedule"
)

var ErrSlotUnavailable = apperror.New(http.StatusConflict, "that time is no longer available")

// BusyLister supplies the blocking (non-terminal) appointment intervals for a
// host. Implemented by the appointment repository; kept as a local interface
// so the read path does not depend on the booking module.
type BusyLister interface {
	ListBusy(ctx context.Context, hostID string, from, to time.Time) ([]Interval, error)
}

type Service interface {
	// AvailableDays returns the civil dates ("YYYY-MM-DD") in the given month
	// that have at least one free slot for the booking type.
	AvailableDays(ctx context.Context, slug string, year int, month time.Month) ([]string, error)

	// AvailableSlots returns the free slots for one civil date. Purely a
	// read; results are advisory until CreateBooking commits.
	AvailableSlots(ctx context.Context, slug string, date time.Time) ([]Slot, error)

	// ValidateSlotStart re-checks, at submission time, that start is the
	// start of a currently generatable slot for the booking type. Defends
	// against stale availability caches and schedule changes between query
	// and submit.
	ValidateSlotStart(ctx context.Context, bt *bookingtype.BookingType, owner *host.Host, start time.Time) error
}

type service struct {
	hosts     host.Service
	types     bookingtype.Service
	schedules schedule.Service
	busy      BusyLister
	leadTime  time.Duration
	now       func() time.Time
}

func NewService(hosts host.Service, types bookingtype.Service, schedules schedule.Service, busy BusyLister, leadTime time.Duration) Service {
	return &service{
		hosts:     hosts,
		types:     types,
		schedules: schedules,
		busy:      busy,
		leadTime:  leadTime,
		now:       time.Now,
	}
}

func (s *service) AvailableDays(ctx context.Context, slug string, year int, month time.Month) ([]string, error) {
	bt, owner, err := s.lookup(ctx, slug)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	freeByDate, err := s.freeSlots(ctx, bt, owner, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, len(freeByDate))
	for date, slots := range freeByDate {
		if len(slots) > 0 {
			days = append(days, date)
		}
	}
	sort.Strings(days)
	return days, nil
}

func (s *service) AvailableSlots(ctx context.Context, slug string, date time.Time) ([]Slot, error) {
	bt, owner, err := s.lookup(ctx, slug)
	if err != nil {
		return nil, err
	}

	freeByDate, err := s.freeSlots(ctx, bt, owner, date, date)
	if err != nil {
		return nil, err
	}
	return freeByDate[date.Format(time.DateOnly)], nil
}

func (s *service) ValidateSlotStart(ctx context.Context, bt *bookingtype.BookingType, owner *host.Host, start time.Time) error {
	loc, err := schedule.LoadZone(owner.Timezone)
	if err != nil {
		return err
	}
	date := schedule.CivilDate(start, loc)

	intervals, err := s.schedules.OpenIntervals(ctx, owner.ID, owner.Timezone, date, date)
	if err != nil {
		return err
	}

	notBefore := s.now().Add(s.leadTime)
	for _, iv := range intervals[date.Format(time.DateOnly)] {
		for _, slot := range Generate(iv.Start, iv.End, bt.Duration(), bt.BufferBefore(), bt.BufferAfter(), notBefore) {
			if slot.Start.Equal(start) {
				return nil
			}
		}
	}
	return ErrSlotUnavailable
}

func (s *service) lookup(ctx context.Context, slug string) (*bookingtype.BookingType, *host.Host, error) {
	bt, err := s.types.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	owner, err := s.hosts.GetByID(ctx, bt.HostID)
	if err != nil {
		return nil, nil, err
	}
	return bt, owner, nil
}

// freeSlots generates and conflict-filters the slots for every civil date in
// [from, to], keyed by "YYYY-MM-DD".
func (s *service) freeSlots(ctx context.Context, bt *bookingtype.BookingType, owner *host.Host, from, to time.Time) (map[string][]Slot, error) {
	intervalsByDate, err := s.schedules.OpenIntervals(ctx, owner.ID, owner.Timezone, from, to)
	if err != nil {
		return nil, err
	}
	if len(intervalsByDate) == 0 {
		return nil, nil
	}

	// One busy lookup spanning every open interval in the window.
	var busyFrom, busyTo time.Time
	for _, intervals := range intervalsByDate {
		for _, iv := range intervals {
			if busyFrom.IsZero() || iv.Start.Before(busyFrom) {
				busyFrom = iv.Start
			}
			if iv.End.After(busyTo) {
				busyTo = iv.End
			}
		}
	}
	busy, err := s.busy.ListBusy(ctx, owner.ID, busyFrom, busyTo)
	if err != nil {
		return nil, err
	}

	notBefore := s.now().Add(s.leadTime)

	out := make(map[string][]Slot, len(intervalsByDate))
	for date, intervals := range intervalsByDate {
		var slots []Slot
		for _, iv := range intervals {
			slots = append(slots, Generate(iv.Start, iv.End, bt.Duration(), bt.BufferBefore(), bt.BufferAfter(), notBefore)...)
		}
		out[date] = Free(slots, busy)
	}
	return out, nil
}
