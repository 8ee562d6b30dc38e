package http

import (
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/request"
)

type ListRequest struct {
	request.ListParams
}

type BookingTypeResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	DurationMinutes     int       `json:"duration_minutes"`
	BufferBeforeMinutes int       `json:"buffer_before_minutes"`
	BufferAfterMinutes  int       `json:"buffer_after_minutes"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewBookingTypeResponse(bt *bookingtype.BookingType) BookingTypeResponse {
	return BookingTypeResponse{
		ID:                  bt.ID,
		Name:                bt.Name,
		Slug:                bt.Slug,
		DurationMinutes:     bt.DurationMinutes,
		BufferBeforeMinutes: bt.BufferBeforeMinutes,
		BufferAfterMinutes:  bt.BufferAfterMinutes,
		IsActive:            bt.Active,
		CreatedAt:           bt.CreatedAt,
		UpdatedAt:           bt.UpdatedAt,
	}
}

// PublicBookingTypeResponse is the reduced shape exposed to anonymous guests.
type PublicBookingTypeResponse struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	DurationMinutes int    `json:"duration_minutes"`
	HostName        string `json:"host_name"`
	Timezone        string `json:"timezone"`
}

type CreateBody struct {
	Name                string `json:"name" binding:"required"`
	Slug                string `json:"slug" binding:"required"`
	DurationMinutes     int    `json:"duration_minutes" binding:"required,min=1"`
	BufferBeforeMinutes int    `json:"buffer_before_minutes" binding:"omitempty,min=0"`
	BufferAfterMinutes  int    `json:"buffer_after_minutes" binding:"omitempty,min=0"`
}

type UpdateBody struct {
	Name                *string `json:"name"`
	DurationMinutes     *int    `json:"duration_minutes" binding:"omitempty,min=1"`
	BufferBeforeMinutes *int    `json:"buffer_before_minutes" binding:"omitempty,min=0"`
	BufferAfterMinutes  *int    `json:"buffer_after_minutes" binding:"omitempty,min=0"`
	IsActive            *bool   `json:"is_active"`
}
