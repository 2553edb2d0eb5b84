package auth

import "github.com/gin-gonic/gin"

// Role values carried in JWT claims. The core trusts these upstream.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetUserID returns the authenticated user's ID or 0.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUserRole returns the authenticated user's role or empty string.
func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get("userRole"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsAdmin reports whether the authenticated user carries the admin role.
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == RoleAdmin
}
