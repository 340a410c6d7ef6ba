//go:build unit

package api_test

import (
	"net/http"

	"hotel-reservation/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	guestToken = "guest-token"
	staffToken = "staff-token"
)

// fakeAuth stands in for RequireAuth: the bearer token picks the caller.
func fakeAuth(guestID, staffID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + guestToken:
			c.Set("user_id", guestID)
			c.Set("user_role", user.RoleGuest)
		case "Bearer " + staffToken:
			c.Set("user_id", staffID)
			c.Set("user_role", user.RoleStaff)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}
}
