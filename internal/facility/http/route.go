package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	facilities := g.Group("/facilities")
	{
		facilities.GET("", h.List)
		facilities.GET("/:id", h.Get)

		admin := facilities.Group("")
		admin.Use(authMiddleware, adminMiddleware)
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.PUT("/:id/maintenance", h.SetMaintenance)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
