package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/session"
)

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := session.TokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		user, err := m.sessions.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("current_user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user := v.(*entity.User)
		if !slices.Contains(roles, user.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PageGate enforces the stateless page redirects: protected pages without a
// session go to the login entry point, and a live session visiting login goes
// to the dashboard. Evaluated per request.
func (m *AuthMiddleware) PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		hasSession := false
		if tokenString := session.TokenFromRequest(c); tokenString != "" {
			if _, err := m.sessions.Parse(tokenString); err == nil {
				hasSession = true
			}
		}

		if strings.HasPrefix(path, "/dashboard") && !hasSession {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if strings.HasPrefix(path, "/login") && hasSession {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}
