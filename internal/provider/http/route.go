package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/providers")

	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.GET("/:id/members", h.ListMembers)
		group.POST("/:id/members", h.AddMember)
		group.DELETE("/:id/members/:userId", h.RemoveMember)
	}
}
