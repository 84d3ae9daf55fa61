package middleware

import (
	"strings"

	"github.com/adityasetu/health-assessment-api/internal/constants"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"github.com/adityasetu/health-assessment-api/internal/session"
	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the session token from the Authorization header (or
// the session cookie as a fallback) through the injected store. Requests
// without a valid session are rejected before the handler runs.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apierrors.NotAuthenticated(c, "")
			c.Abort()
			return
		}

		userID, ok := store.Get(token)
		if !ok {
			apierrors.NotAuthenticated(c, "Session expired or invalid")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequireAdmin checks the authenticated user's admin flag. It must run after
// RequireAuth; a logged-in non-admin gets a 403, distinct from the 401 an
// anonymous caller gets.
func RequireAdmin(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.NotAuthenticated(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			apierrors.NotAuthenticated(c, "Session expired or invalid")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			apierrors.NotAuthorized(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
