package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communityforge/events-api/pkg/helpers"
	"github.com/communityforge/events-api/pkg/response"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// RequireAuth validates the Authorization bearer header and injects the
// caller's id and role into the gin context. A missing signing secret is a
// deployment fault and is surfaced as a 500, not a 401.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := helpers.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, errors.New("Authorization token required"))
			return
		}
		if !jwt.Configured() {
			response.AbortWithError(c, http.StatusInternalServerError, helpers.ErrNoSecret)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin runs after RequireAuth and gates admin-only writes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRoleKey)
		if role == "" {
			response.AbortWithError(c, http.StatusUnauthorized, errors.New("Unauthorized"))
			return
		}
		if role != "admin" {
			response.AbortWithError(c, http.StatusForbidden, errors.New("Admin access required"))
			return
		}
		c.Next()
	}
}
