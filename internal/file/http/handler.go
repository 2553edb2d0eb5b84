package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
	"github.com/dimaskresna/campus-booking-backend/internal/file"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
)

const (
	maxPhotoSizeBytes    = 10 << 20
	maxDocumentSizeBytes = 20 << 20
)

var documentTypes = []string{"application/pdf"}

type Handler struct {
	fileService file.Service
}

func NewHandler(fileService file.Service) *Handler {
	return &Handler{fileService: fileService}
}

// UploadPhoto accepts an image, normalizes it to JPEG and stores it.
// Used for facility photos.
func (h *Handler) UploadPhoto(c *gin.Context) {
	h.upload(c, file.UploadInput{
		MaxSizeBytes:   maxPhotoSizeBytes,
		NormalizeImage: true,
	})
}

// UploadDocument accepts a PDF proposal document and stores it unchanged.
func (h *Handler) UploadDocument(c *gin.Context) {
	h.upload(c, file.UploadInput{
		MaxSizeBytes: maxDocumentSizeBytes,
		AllowedTypes: documentTypes,
	})
}

func (h *Handler) upload(c *gin.Context, in file.UploadInput) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	in.FileHeader = fileHeader
	in.UserID = auth.GetUserID(c)

	f, err := h.fileService.Upload(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := FileUploadResponse{
		FileID: f.ID,
		URL:    file.URL(f.ID),
	}
	if f.ThumbnailPath != nil {
		t := file.ThumbnailURL(f.ID)
		resp.ThumbnailURL = &t
	}

	c.JSON(http.StatusCreated, resp)
}

// ServeFile streams the stored file content.
func (h *Handler) ServeFile(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file id is required"})
		return
	}

	stream, info, err := h.fileService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", info.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+info.Filename+"\"")

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

// ServeThumbnail streams the JPEG thumbnail of an image file.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file id is required"})
		return
	}

	stream, info, err := h.fileService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+info.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}
