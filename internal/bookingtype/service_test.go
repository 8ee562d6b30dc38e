package bookingtype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHostID  = "8e5a2c1e-6f2d-4a7b-9c3d-1f0e2a3b4c5d"
	otherHostID = "f0000000-0000-4000-8000-000000000000"
)

type memRepository struct {
	nextID int
	byID   map[string]*BookingType
	bySlug map[string]*BookingType
}

func newMemRepository() *memRepository {
	return &memRepository{
		byID:   map[string]*BookingType{},
		bySlug: map[string]*BookingType{},
	}
}

func (r *memRepository) Create(_ context.Context, bt *BookingType) error {
	if _, taken := r.bySlug[bt.Slug]; taken {
		return ErrSlugTaken
	}
	r.nextID++
	bt.ID = string(rune('a' + r.nextID))
	stored := *bt
	r.byID[bt.ID] = &stored
	r.bySlug[bt.Slug] = &stored
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*BookingType, error) {
	bt, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *bt
	return &c, nil
}

func (r *memRepository) GetBySlug(_ context.Context, slug string) (*BookingType, error) {
	bt, ok := r.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	c := *bt
	return &c, nil
}

func (r *memRepository) List(_ context.Context, filter Filter) ([]*BookingType, int, error) {
	var out []*BookingType
	for _, bt := range r.byID {
		if filter.HostID != "" && bt.HostID != filter.HostID {
			continue
		}
		c := *bt
		out = append(out, &c)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(_ context.Context, bt *BookingType) error {
	stored, ok := r.byID[bt.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *bt
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		HostID:          testHostID,
		Name:            "Intro Call",
		Slug:            "intro-call",
		DurationMinutes: 30,
	}
}

func TestCreate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		svc := NewService(newMemRepository())
		bt, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, bt.ID)
		assert.True(t, bt.Active)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(newMemRepository())

		req := validCreateRequest()
		req.Name = "   "
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrNameRequired)

		for _, slug := range []string{"", "Intro-Call", "intro_call", "-intro", "intro-", "intro call"} {
			req = validCreateRequest()
			req.Slug = slug
			_, err = svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidSlug, slug)
		}

		req = validCreateRequest()
		req.DurationMinutes = 0
		_, err = svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration)

		req = validCreateRequest()
		req.BufferBeforeMinutes = -5
		_, err = svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidBuffer)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc := NewService(newMemRepository())
		_, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, ErrSlugTaken)
	})
}

func TestGetActiveBySlug(t *testing.T) {
	svc := NewService(newMemRepository())
	bt, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	got, err := svc.GetActiveBySlug(context.Background(), "intro-call")
	require.NoError(t, err)
	assert.Equal(t, bt.ID, got.ID)

	// Deactivated types look exactly like missing ones to guests.
	_, err = svc.Deactivate(context.Background(), testHostID, bt.ID)
	require.NoError(t, err)
	_, err = svc.GetActiveBySlug(context.Background(), "intro-call")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	setup := func(t *testing.T) (Service, *BookingType) {
		svc := NewService(newMemRepository())
		bt, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		return svc, bt
	}

	t.Run("partial update", func(t *testing.T) {
		svc, bt := setup(t)
		name := "Discovery Call"
		duration := 45
		got, err := svc.Update(context.Background(), testHostID, bt.ID, UpdateRequest{
			Name:            &name,
			DurationMinutes: &duration,
		})
		require.NoError(t, err)
		assert.Equal(t, "Discovery Call", got.Name)
		assert.Equal(t, 45, got.DurationMinutes)
		assert.Equal(t, "intro-call", got.Slug)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		svc, bt := setup(t)
		name := "Hijacked"
		_, err := svc.Update(context.Background(), otherHostID, bt.ID, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		svc, bt := setup(t)
		duration := -10
		_, err := svc.Update(context.Background(), testHostID, bt.ID, UpdateRequest{DurationMinutes: &duration})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}
