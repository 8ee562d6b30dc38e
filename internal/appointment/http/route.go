package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/appointments")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/:id/status", h.UpdateStatus)
	}
}

// RegisterPublicRoutes mounts the guest-facing booking endpoint.
func RegisterPublicRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/bookings", h.CreateBooking)
}
