package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/rooms/:id/photos", h.ListByRoom)
	g.POST("/rooms/:id/photos", authMiddleware, h.Upload)

	group := g.Group("/photos")
	group.GET("/:id", h.Get)
	group.GET("/:id/thumbnail", h.GetThumbnail)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
