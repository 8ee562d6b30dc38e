package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/schedule")

	// === Authenticated Routes (host settings surface) ===
	group.Use(authMiddleware)
	{
		group.GET("", h.GetWeeklySchedule)
		group.PUT("", h.PutWeeklySchedule)
		group.GET("/exceptions", h.ListExceptions)
		group.POST("/exceptions", h.PutException)
		group.DELETE("/exceptions/:date", h.DeleteException)
	}
}
