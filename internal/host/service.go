package host

import (
	"context"
	"strings"
	"time"
)

type UpdateRequest struct {
	Name     *string
	Timezone *string
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Host, error)
	GetBySlug(ctx context.Context, slug string) (*Host, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Host, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Host, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Host, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Host, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		h.Name = *req.Name
	}
	if req.Timezone != nil {
		// Reject unknown IANA identifiers up front; every availability
		// computation for this host depends on this value.
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		h.Timezone = *req.Timezone
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}
