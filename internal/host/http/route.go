package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/profile")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.GetProfile)
		group.PATCH("", h.UpdateProfile)
	}
}
