package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/pkg/response"
	"github.com/gravitymeet/scheduling-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetWeeklySchedule(c *gin.Context) {
	hostID := auth.GetHostID(c)

	ws, err := h.service.GetWeeklySchedule(c.Request.Context(), hostID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWeeklyScheduleBody(ws))
}

func (h *Handler) PutWeeklySchedule(c *gin.Context) {
	hostID := auth.GetHostID(c)

	var body WeeklyScheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ws, ok := body.ToModel()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday key"})
		return
	}

	if err := h.service.ReplaceWeeklySchedule(c.Request.Context(), hostID, ws); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWeeklyScheduleBody(ws))
}

func (h *Handler) ListExceptions(c *gin.Context) {
	hostID := auth.GetHostID(c)

	var req ListExceptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	from, _ := time.Parse(time.DateOnly, req.From)
	to, _ := time.Parse(time.DateOnly, req.To)
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	exceptions, err := h.service.ListDateExceptions(c.Request.Context(), hostID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DateExceptionResponse, len(exceptions))
	for i, exc := range exceptions {
		items[i] = NewDateExceptionResponse(exc)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) PutException(c *gin.Context) {
	hostID := auth.GetHostID(c)

	var body DateExceptionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	exc, err := body.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	if err := h.service.PutDateException(c.Request.Context(), hostID, exc); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDateExceptionResponse(exc))
}

func (h *Handler) DeleteException(c *gin.Context) {
	hostID := auth.GetHostID(c)

	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	if err := h.service.DeleteDateException(c.Request.Context(), hostID, date); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
