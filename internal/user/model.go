package user

import (
	"net/http"
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already taken")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrSuspended          = apperror.New(http.StatusForbidden, "account has been suspended, please contact administrator")
	ErrCannotSuspendAdmin = apperror.New(http.StatusBadRequest, "cannot suspend admin users")
)

// User represents an account in the system. Role is either "user" or "admin";
// the reservation core trusts the role carried in the access token.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsSuspended  bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines parameters for listing users (admin view).
type Filter struct {
	Keyword  string // matches username, full name or email
	Role     string
	Page     int
	PageSize int
}
