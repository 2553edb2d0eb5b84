package reservation

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrFacilityNotFound  = apperror.New(http.StatusNotFound, "facility not found")
	ErrConflict          = apperror.New(http.StatusConflict, "time slot unavailable")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "unknown reservation status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "invalid status transition")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrNotEditable       = apperror.New(http.StatusConflict, "only pending reservations can be edited")
	ErrAlreadyEnded      = apperror.New(http.StatusBadRequest, "reservation has already ended")
	ErrPurposeTooShort   = apperror.New(http.StatusBadRequest, "purpose must be at least 5 characters")
	ErrInvalidAttendees  = apperror.New(http.StatusBadRequest, "attendees must be at least 1")
	ErrCapacityExceeded  = apperror.New(http.StatusBadRequest, "attendees exceed facility capacity")
	ErrMaintenance       = apperror.New(http.StatusBadRequest, "facility is under maintenance")
	ErrLeadTime          = apperror.New(http.StatusBadRequest, "booking date is too soon")
	ErrFacilityInactive  = apperror.New(http.StatusBadRequest, "facility is not open for reservations")
)

// minPurposeLength is the shortest purpose accepted on submission.
const minPurposeLength = 5

// Reservation is a request to use one facility for one contiguous time
// range on a single date. Pending and approved reservations hold their
// slot; rejected and canceled ones are permanently out of play.
type Reservation struct {
	ID          int64
	FacilityID  int64
	RequesterID int64
	Purpose     string
	Attendees   int
	ProposalURL string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated on reads via joins.
	FacilityName  string
	RequesterName string
}

// Filter defines parameters for listing reservations.
type Filter struct {
	RequesterID int64
	FacilityID  int64
	Status      Status
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	PageSize    int
}
