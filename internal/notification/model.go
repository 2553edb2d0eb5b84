package notification

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "notification not found")

// Notification is an in-app message delivered to a single user.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

type Filter struct {
	UserID     int64
	UnreadOnly bool
	Page       int
	PageSize   int
}
