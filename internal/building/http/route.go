package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	buildings := g.Group("/buildings")
	{
		buildings.GET("", h.List)
		buildings.GET("/:id", h.Get)

		admin := buildings.Group("")
		admin.Use(authMiddleware, adminMiddleware)
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
