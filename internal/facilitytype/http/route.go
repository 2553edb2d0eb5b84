package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	types := g.Group("/facility-types")
	{
		types.GET("", h.List)
		types.GET("/:id", h.Get)

		admin := types.Group("")
		admin.Use(authMiddleware, adminMiddleware)
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
