package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/model"
	"voicedesk.app/api-server/internal/service"
)

const (
	// SessionCookieName carries the session ID for browser clients;
	// SessionIDHeader serves API clients.
	SessionCookieName = "vd_session"
	SessionIDHeader   = "X-Session-ID"

	userContextKey = "authenticated_user"
)

// RequireSession resolves the request's principal or aborts with 401. Handlers
// behind it can rely on CurrentUser returning a valid user.
func RequireSession(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID, err := sessionIDFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := auth.ValidateSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			slog.ErrorContext(ctx, "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the principal set by RequireSession.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func sessionIDFromRequest(c *gin.Context) (int64, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return strconv.ParseInt(cookie, 10, 64)
	}
	if header := c.GetHeader(SessionIDHeader); header != "" {
		return strconv.ParseInt(header, 10, 64)
	}
	return 0, errors.New("no session credential")
}
