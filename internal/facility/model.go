package facility

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "facility not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "facility name is required")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be greater than zero")
	ErrInvalidBuilding = apperror.New(http.StatusBadRequest, "invalid building_id")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid facility_type_id")
	ErrInvalidWindow   = apperror.New(http.StatusBadRequest, "maintenance end must be in the future")
)

// Facility represents a bookable space (e.g., Seminar Room 3.01, Futsal Court B).
type Facility struct {
	ID         int64
	TypeID     int64
	BuildingID int64
	Name       string
	Capacity   int
	PhotoURL   string
	IsActive   bool

	// Maintenance window. While MaintenanceUntil is in the future the
	// facility rejects new reservations; existing ones are untouched.
	MaintenanceUntil  *time.Time
	MaintenanceReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads via joins.
	TypeName     string
	BuildingName string
}

// UnderMaintenance reports whether the facility is closed for maintenance at t.
func (f *Facility) UnderMaintenance(t time.Time) bool {
	return f.MaintenanceUntil != nil && t.Before(*f.MaintenanceUntil)
}

// Filter defines parameters for listing facilities.
type Filter struct {
	BuildingID int64
	TypeID     int64
	Keyword    string
	OnlyActive bool
	Page       int
	PageSize   int
}
