package bookingtype

import (
	"context"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type CreateRequest struct {
	HostID              string
	Name                string
	Slug                string
	DurationMinutes     int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
}

type UpdateRequest struct {
	Name                *string
	DurationMinutes     *int
	BufferBeforeMinutes *int
	BufferAfterMinutes  *int
	Active              *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*BookingType, error)
	GetByID(ctx context.Context, id string) (*BookingType, error)
	// GetActiveBySlug is the public lookup used by the guest booking flow.
	// Inactive types are indistinguishable from missing ones on purpose.
	GetActiveBySlug(ctx context.Context, slug string) (*BookingType, error)
	List(ctx context.Context, filter Filter) ([]*BookingType, int, error)
	Update(ctx context.Context, hostID, id string, req UpdateRequest) (*BookingType, error)
	// Deactivate soft-disables a booking type. Types with existing
	// appointments are never hard-deleted, preserving history.
	Deactivate(ctx context.Context, hostID, id string) (*BookingType, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BookingType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, ErrInvalidSlug
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.BufferBeforeMinutes < 0 || req.BufferAfterMinutes < 0 {
		return nil, ErrInvalidBuffer
	}

	bt := &BookingType{
		HostID:              req.HostID,
		Name:                req.Name,
		Slug:                req.Slug,
		DurationMinutes:     req.DurationMinutes,
		BufferBeforeMinutes: req.BufferBeforeMinutes,
		BufferAfterMinutes:  req.BufferAfterMinutes,
		Active:              true,
	}

	if err := s.repo.Create(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*BookingType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetActiveBySlug(ctx context.Context, slug string) (*BookingType, error) {
	bt, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !bt.Active {
		return nil, ErrNotFound
	}
	return bt, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*BookingType, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, hostID, id string, req UpdateRequest) (*BookingType, error) {
	bt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bt.HostID != hostID {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		bt.Name = *req.Name
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		bt.DurationMinutes = *req.DurationMinutes
	}
	if req.BufferBeforeMinutes != nil {
		if *req.BufferBeforeMinutes < 0 {
			return nil, ErrInvalidBuffer
		}
		bt.BufferBeforeMinutes = *req.BufferBeforeMinutes
	}
	if req.BufferAfterMinutes != nil {
		if *req.BufferAfterMinutes < 0 {
			return nil, ErrInvalidBuffer
		}
		bt.BufferAfterMinutes = *req.BufferAfterMinutes
	}
	if req.Active != nil {
		bt.Active = *req.Active
	}

	if err := s.repo.Update(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (s *service) Deactivate(ctx context.Context, hostID, id string) (*BookingType, error) {
	bt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bt.HostID != hostID {
		return nil, ErrNotFound
	}

	bt.Active = false
	if err := s.repo.Update(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}
