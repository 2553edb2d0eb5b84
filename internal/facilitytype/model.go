package facilitytype

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "facility type not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "facility type name is required")
	ErrNameTaken    = apperror.New(http.StatusConflict, "facility type name already exists")
)

// FacilityType is a category label such as "meeting room" or "basketball court".
type FacilityType struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
