package building

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "building not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "building name is required")
)

// Building represents a campus building that hosts facilities.
type Building struct {
	ID          int64
	Name        string
	Code        string
	Address     string
	Description string
	CreatedAt   time.Time
}

// Filter defines parameters for listing buildings.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
