package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	users := g.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", h.Me)

		admin := users.Group("")
		admin.Use(adminMiddleware)
		{
			admin.GET("", h.List)
			admin.PUT("/:id/suspend", h.Suspend)
			admin.PUT("/:id/unsuspend", h.Unsuspend)
		}
	}
}
