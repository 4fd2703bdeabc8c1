// Package middleware contains the Gin middleware shared by the HTTP layer.
//
// This file implements SessionAuth, the guard in front of every
// authenticated route. The session token travels in the "session" cookie
// set at login; the X-Session-Token header is accepted as a fallback for
// non-browser clients.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/domain"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// sessionTokenHeader is the non-cookie fallback for API clients.
const sessionTokenHeader = "X-Session-Token"

// Authenticator resolves a session token to its user. Implemented by
// services.AccountService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// SessionAuth rejects requests without a valid session with a 401 error
// envelope. On success it stores "userID" and "userEmail" in the Gin context
// for handlers and downstream middleware (logging, rate-limit keying).
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", u.ID)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}

// SessionToken extracts the session token from the request: cookie first,
// then the header fallback. Empty when absent.
func SessionToken(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookieName); err == nil && v != "" {
		return v
	}
	return c.GetHeader(sessionTokenHeader)
}

// UserID returns the authenticated user ID set by SessionAuth, or "".
func UserID(c *gin.Context) string {
	v, _ := c.Get("userID")
	return asString(v)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    "authentication required",
	})
}
