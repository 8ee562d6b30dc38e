package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gravitymeet/scheduling-backend/internal/availability"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	btHttp "github.com/gravitymeet/scheduling-backend/internal/bookingtype/http"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
	types   bookingtype.Service
	hosts   host.Service
}

func NewHandler(service availability.Service, types bookingtype.Service, hosts host.Service) *Handler {
	return &Handler{service: service, types: types, hosts: hosts}
}

// GetBookingType exposes the reduced public metadata the picker UI needs.
func (h *Handler) GetBookingType(c *gin.Context) {
	bt, err := h.types.GetActiveBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, bookingtype.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
			return
		}
		response.Error(c, err)
		return
	}

	owner, err := h.hosts.GetByID(c.Request.Context(), bt.HostID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, btHttp.PublicBookingTypeResponse{
		Name:            bt.Name,
		Slug:            bt.Slug,
		DurationMinutes: bt.DurationMinutes,
		HostName:        owner.Name,
		Timezone:        owner.Timezone,
	})
}

func (h *Handler) GetAvailableDays(c *gin.Context) {
	var req DaysRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM", "details": err.Error()})
		return
	}

	month, _ := time.Parse("2006-01", req.Month)

	days, err := h.service.AvailableDays(c.Request.Context(), c.Param("slug"), month.Year(), month.Month())
	if err != nil {
		if errors.Is(err, bookingtype.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
			return
		}
		response.Error(c, err)
		return
	}

	if days == nil {
		days = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *Handler) GetAvailableSlots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD", "details": err.Error()})
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	slots, err := h.service.AvailableSlots(c.Request.Context(), c.Param("slug"), date)
	if err != nil {
		if errors.Is(err, bookingtype.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": NewSlotResponses(slots)})
}
