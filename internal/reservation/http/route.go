package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	reservations := g.Group("/reservations")
	{
		reservations.GET("/availability/:facilityId", h.Availability)

		authed := reservations.Group("")
		authed.Use(authMiddleware)
		{
			authed.POST("", h.Create)
			authed.GET("", h.List)
			authed.GET("/:id", h.Get)
			authed.PUT("/:id", h.Edit)
			authed.DELETE("/:id", h.Cancel)

			admin := authed.Group("")
			admin.Use(adminMiddleware)
			{
				admin.PUT("/:id/status", h.UpdateStatus)
			}
		}
	}
}
