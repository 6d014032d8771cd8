package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	group.POST("/register", h.Register)
	group.POST("/login", h.Login)

	group.GET("", authMiddleware, h.List)
	group.GET("/me", authMiddleware, h.Me)
	group.PATCH("/:id", authMiddleware, h.Update)
}
