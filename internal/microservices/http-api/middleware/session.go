package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fightcard/internal/microservices/http-api/service"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "fightcard_session"

const viewerKey = "viewer"

// Session resolves the viewer of every request and stores it in both the
// gin context and the request context. Requests without a usable token
// continue as anonymous; only a session store outage aborts (503).
func Session(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := sessions.Resolve(c.Request.Context(), SessionToken(c))
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "session_resolve_failed", "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, shared.ErrStorageUnavailable) {
				status = http.StatusServiceUnavailable
			}
			c.AbortWithStatusJSON(status, gin.H{"error": "session store unavailable"})
			return
		}

		c.Set(viewerKey, v)
		c.Request = c.Request.WithContext(viewer.NewContext(c.Request.Context(), v))
		c.Next()
	}
}

// RequireViewer rejects anonymous requests with 401. It must run after Session.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := viewer.Require(CurrentViewer(c)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// CurrentViewer returns the viewer resolved by Session, or Anonymous.
func CurrentViewer(c *gin.Context) viewer.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if typed, ok := v.(viewer.Viewer); ok {
			return typed
		}
	}
	return viewer.FromContext(c.Request.Context())
}

// SessionToken extracts the token from the session cookie, falling back to
// an "Authorization: Bearer <token>" header for non-browser clients.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2) // 0 is Bearer, 1 is token
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
