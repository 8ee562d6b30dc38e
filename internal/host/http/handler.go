package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/host"
)

type Handler struct {
	service host.Service
}

func NewHandler(service host.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(c *gin.Context) {
	owner, err := h.service.GetByID(c.Request.Context(), auth.GetHostID(c))
	if err != nil {
		if errors.Is(err, host.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "host not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, NewProfileResponse(owner))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var body UpdateProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := host.UpdateRequest{
		Name:     body.Name,
		Timezone: body.Timezone,
	}

	owner, err := h.service.Update(c.Request.Context(), auth.GetHostID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, host.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "host not found"})
		case errors.Is(err, host.ErrNameRequired), errors.Is(err, host.ErrInvalidTimezone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, NewProfileResponse(owner))
}
