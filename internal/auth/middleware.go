package auth

import (
	"context"
	"net/http"

	dom "github.com/aubertlenno/Todo-Backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "auth_cookie"

const contextKeyUsername = "username"

// UserChecker re-confirms that the token subject still exists. A deleted or
// renamed user invalidates the session even though the token itself is
// still cryptographically valid.
type UserChecker interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
}

// UsernameFromContext returns the current username set by RequireAuth.
// Empty if not set.
func UsernameFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUsername)
	if !ok {
		return ""
	}
	username, ok := v.(string)
	if !ok {
		return ""
	}
	return username
}

// RequireAuth returns a middleware that verifies the session cookie and
// sets the current username in context. If missing, invalid, expired, or
// the user no longer exists, responds with 401.
func RequireAuth(issuer *Issuer, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		username, err := issuer.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		if _, err := users.GetByUsername(c.Request.Context(), username); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUsername, username)
		c.Next()
	}
}
