package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	hosts map[string]*Host
}

func (r *memRepository) GetByID(_ context.Context, id string) (*Host, error) {
	h, ok := r.hosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *h
	return &c, nil
}

func (r *memRepository) GetBySlug(_ context.Context, slug string) (*Host, error) {
	for _, h := range r.hosts {
		if h.Slug == slug {
			c := *h
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) Update(_ context.Context, h *Host) error {
	stored, ok := r.hosts[h.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *h
	return nil
}

func newTestService() Service {
	return NewService(&memRepository{hosts: map[string]*Host{
		"h1": {ID: "h1", Name: "Amina", Slug: "amina", Timezone: "Asia/Dubai"},
	}})
}

func TestUpdate(t *testing.T) {
	t.Run("change timezone", func(t *testing.T) {
		svc := newTestService()
		tz := "Europe/Berlin"
		h, err := svc.Update(context.Background(), "h1", UpdateRequest{Timezone: &tz})
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", h.Timezone)
	})

	t.Run("unknown timezone rejected", func(t *testing.T) {
		svc := newTestService()
		tz := "Mars/Olympus_Mons"
		_, err := svc.Update(context.Background(), "h1", UpdateRequest{Timezone: &tz})
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := newTestService()
		name := "  "
		_, err := svc.Update(context.Background(), "h1", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown host", func(t *testing.T) {
		svc := newTestService()
		tz := "UTC"
		_, err := svc.Update(context.Background(), "nope", UpdateRequest{Timezone: &tz})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
