package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/domain"
)

// SessionResolver maps a browser token to an AuthState.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenStr string) (*domain.Session, domain.AuthState)
}

// SessionAuth gates every protected page. The check runs before any
// upstream fetch: an absent session means an immediate 401 with the login
// location, and the handler never executes. There is no third state,
// a session is valid or the page does not load.
func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, state := resolver.Resolve(c.Request.Context(), extractToken(c))
		if state != domain.AuthValid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
				"redirect": "/login",
			})
			return
		}

		c.Set("session_id", session.ID)
		c.Set("api_token", session.APIToken)
		c.Set("email", session.Email)

		c.Next()
	}
}

// extractToken reads the session token from the Authorization header or,
// for direct download links like the PDF exports, the token cookie.
func extractToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
