package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gravitymeet/scheduling-backend/internal/appointment"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/response"
)

type Handler struct {
	service appointment.Service
}

func NewHandler(service appointment.Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking is the public guest-facing booking endpoint.
func (h *Handler) CreateBooking(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := appointment.CreateRequest{
		BookingTypeSlug: body.BookingTypeSlug,
		StartTime:       body.StartTime,
		Guest: appointment.Guest{
			Name:    body.Guest.Name,
			Email:   body.Guest.Email,
			Phone:   body.Guest.Phone,
			Company: body.Guest.Company,
			Notes:   body.Guest.Notes,
		},
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingtype.ErrNotFound), errors.Is(err, host.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking type not found"})
		default:
			response.Error(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, NewBookingConfirmationResponse(a))
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := appointment.Filter{
		HostID:        auth.GetHostID(c),
		BookingTypeID: req.BookingTypeID,
		Status:        req.Status,
		From:          req.From,
		To:            req.To,
		Page:          req.Page,
		PageSize:      req.PageSize,
		SortOrder:     req.SortOrder,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]AppointmentResponse, len(items))
	for i, a := range items {
		resp[i] = NewAppointmentResponse(a)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(resp, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), auth.GetHostID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := appointment.UpdateStatusRequest{
		Status: appointment.Status(body.Status),
		Actor:  body.Actor,
		Reason: body.Reason,
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), auth.GetHostID(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}
