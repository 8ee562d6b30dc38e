package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service bookingtype.Service
}

func NewHandler(service bookingtype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := bookingtype.Filter{
		HostID:   auth.GetHostID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list booking types"})
		return
	}

	resp := make([]BookingTypeResponse, len(items))
	for i, bt := range items {
		resp[i] = NewBookingTypeResponse(bt)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(resp, filter.Page, filter.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := bookingtype.CreateRequest{
		HostID:              auth.GetHostID(c),
		Name:                body.Name,
		Slug:                body.Slug,
		DurationMinutes:     body.DurationMinutes,
		BufferBeforeMinutes: body.BufferBeforeMinutes,
		BufferAfterMinutes:  body.BufferAfterMinutes,
	}

	bt, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingtype.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, bookingtype.ErrNameRequired),
			errors.Is(err, bookingtype.ErrInvalidSlug),
			errors.Is(err, bookingtype.ErrInvalidDuration),
			errors.Is(err, bookingtype.ErrInvalidBuffer):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking type"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewBookingTypeResponse(bt))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := bookingtype.UpdateRequest{
		Name:                body.Name,
		DurationMinutes:     body.DurationMinutes,
		BufferBeforeMinutes: body.BufferBeforeMinutes,
		BufferAfterMinutes:  body.BufferAfterMinutes,
		Active:              body.IsActive,
	}

	bt, err := h.service.Update(c.Request.Context(), auth.GetHostID(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, bookingtype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
		case errors.Is(err, bookingtype.ErrNameRequired),
			errors.Is(err, bookingtype.ErrInvalidDuration),
			errors.Is(err, bookingtype.ErrInvalidBuffer):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking type"})
		}
		return
	}

	c.JSON(http.StatusOK, NewBookingTypeResponse(bt))
}

func (h *Handler) Deactivate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	bt, err := h.service.Deactivate(c.Request.Context(), auth.GetHostID(c), id)
	if err != nil {
		if errors.Is(err, bookingtype.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate booking type"})
		return
	}

	c.JSON(http.StatusOK, NewBookingTypeResponse(bt))
}
