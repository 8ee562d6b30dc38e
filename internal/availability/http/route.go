package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the anonymous guest-facing availability endpoints.
// The caller applies rate limiting to the enclosing group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/booking-types/:slug")
	{
		group.GET("", h.GetBookingType)
		group.GET("/days", h.GetAvailableDays)
		group.GET("/slots", h.GetAvailableSlots)
	}
}
