package file

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "file not found")
	ErrTooLarge        = apperror.New(http.StatusBadRequest, "file exceeds the maximum allowed size")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "unsupported file type")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
)

// File is a stored upload: a facility photo or a reservation proposal document.
type File struct {
	ID            string
	UserID        int64
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for downloading the file.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public path for the file's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
