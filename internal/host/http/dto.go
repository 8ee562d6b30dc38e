package http

import (
	"time"

	"github.com/gravitymeet/scheduling-backend/internal/host"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Slug      string    `json:"slug"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileResponse(h *host.Host) ProfileResponse {
	return ProfileResponse{
		ID:        h.ID,
		Name:      h.Name,
		Email:     h.Email,
		Slug:      h.Slug,
		Timezone:  h.Timezone,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type UpdateProfileBody struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}
