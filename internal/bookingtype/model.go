package bookingtype

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("booking type not found")
	ErrNameRequired    = errors.New("name cannot be empty")
	ErrInvalidSlug     = errors.New("slug must be lowercase letters, digits and hyphens")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrInvalidDuration = errors.New("duration must be greater than zero")
	ErrInvalidBuffer   = errors.New("buffer minutes cannot be negative")
)

// BookingType is a bookable meeting kind (e.g. "Intro Call, 30 min").
// The slug appears in public booking URLs.
type BookingType struct {
	ID                  string
	HostID              string
	Name                string
	Slug                string
	DurationMinutes     int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Duration returns the meeting length.
func (bt *BookingType) Duration() time.Duration {
	return time.Duration(bt.DurationMinutes) * time.Minute
}

// BufferBefore returns the lead-in padding before each slot.
func (bt *BookingType) BufferBefore() time.Duration {
	return time.Duration(bt.BufferBeforeMinutes) * time.Minute
}

// BufferAfter returns the trailing padding after each slot.
func (bt *BookingType) BufferAfter() time.Duration {
	return time.Duration(bt.BufferAfterMinutes) * time.Minute
}

// Filter defines parameters for listing booking types.
type Filter struct {
	HostID   string
	Page     int
	PageSize int
}
