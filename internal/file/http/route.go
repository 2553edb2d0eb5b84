package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	files := g.Group("/files")
	{
		files.GET("/:id", h.ServeFile)
		files.GET("/:id/thumbnail", h.ServeThumbnail)
	}

	uploads := g.Group("/uploads")
	uploads.Use(authMiddleware)
	{
		uploads.POST("/photos", h.UploadPhoto)
		uploads.POST("/documents", h.UploadDocument)
	}
}
