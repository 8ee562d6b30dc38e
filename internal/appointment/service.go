package appointment

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/availability"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/host"
)

type CreateRequest struct {
	BookingTypeSlug string
	StartTime       time.Time
	Guest           Guest
}

type UpdateStatusRequest struct {
	Status Status
	Actor  string
	Reason string
}

type Service interface {
	// Create books a slot for a guest. The requested start is re-validated
	// against the live availability calculation, the end time is derived
	// server-side from the booking type, and the insert races concurrent
	// bookings at the database so only one submission for a slot wins.
	Create(ctx context.Context, req CreateRequest) (*Appointment, error)

	GetByID(ctx context.Context, hostID, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, hostID, id string, req UpdateStatusRequest) (*Appointment, error)
}

type service struct {
	repo  Repository
	types bookingtype.Service
	hosts host.Service
	avail availability.Service
}

func NewService(repo Repository, types bookingtype.Service, hosts host.Service, avail availability.Service) Service {
	return &service{repo: repo, types: types, hosts: hosts, avail: avail}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	if err := validateGuest(req.Guest); err != nil {
		return nil, err
	}
	if req.StartTime.IsZero() {
		return nil, ErrStartTimeRequired
	}

	bt, err := s.types.GetActiveBySlug(ctx, req.BookingTypeSlug)
	if err != nil {
		return nil, err
	}
	owner, err := s.hosts.GetByID(ctx, bt.HostID)
	if err != nil {
		return nil, err
	}

	start := req.StartTime.UTC()
	if err := s.avail.ValidateSlotStart(ctx, bt, owner, start); err != nil {
		return nil, err
	}

	a := &Appointment{
		HostID:          bt.HostID,
		BookingTypeID:   bt.ID,
		BookingTypeName: bt.Name,
		StartTime:       start,
		EndTime:         start.Add(bt.Duration()),
		Status:          StatusScheduled,
		Guest:           req.Guest,
	}

	event := BookingCreated{
		HostID:          a.HostID,
		HostName:        owner.Name,
		HostEmail:       owner.Email,
		BookingTypeID:   a.BookingTypeID,
		BookingTypeName: a.BookingTypeName,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		GuestName:       a.Guest.Name,
		GuestEmail:      a.Guest.Email,
		GuestPhone:      a.Guest.Phone,
		GuestCompany:    a.Guest.Company,
		GuestNotes:      a.Guest.Notes,
	}

	if err := s.repo.InsertIfFree(ctx, a, event); err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"appointment_id", a.ID,
		"host_id", a.HostID,
		"booking_type", req.BookingTypeSlug,
		"start_time", a.StartTime,
	)
	return a, nil
}

func (s *service) GetByID(ctx context.Context, hostID, id string) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.HostID != hostID {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, hostID, id string, req UpdateStatusRequest) (*Appointment, error) {
	a, err := s.GetByID(ctx, hostID, id)
	if err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !CanTransition(a.Status, req.Status) {
		return nil, ErrInvalidTransition
	}
	if req.Status == StatusCancelled {
		if req.Actor == "" {
			return nil, ErrCancellerRequired
		}
		a.CancelledBy = req.Actor
		a.CancellationReason = req.Reason
	}
	a.Status = req.Status

	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func validateGuest(g Guest) error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrGuestNameRequired
	}
	if _, err := mail.ParseAddress(g.Email); err != nil {
		return ErrInvalidGuestEmail
	}
	return nil
}

// BusyAdapter exposes blocking appointments to the availability calculation
// without that package depending on this one.
type BusyAdapter struct {
	Repo Repository
}

func (b BusyAdapter) ListBusy(ctx context.Context, hostID string, from, to time.Time) ([]availability.Interval, error) {
	appts, err := b.Repo.ListNonTerminal(ctx, hostID, from, to)
	if err != nil {
		return nil, err
	}
	busy := make([]availability.Interval, 0, len(appts))
	for _, a := range appts {
		busy = append(busy, availability.Interval{Start: a.StartTime, End: a.EndTime})
	}
	return busy, nil
}
