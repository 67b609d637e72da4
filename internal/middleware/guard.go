package middleware

import (
	"net/http"
	"strings"

	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Path prefixes and redirect targets used by the route guard.
const (
	ProtectedPrefix = "/dashboard"
	AuthPagePrefix  = "/auth"

	SignInPath    = "/auth/signin"
	DashboardPath = "/dashboard"
)

// SessionCookieName is the cookie that carries the session JWT for page
// requests. API clients may send a bearer header instead.
const SessionCookieName = "bh_session"

type pathClass int

const (
	pathOther pathClass = iota
	pathProtected
	pathAuthPage
)

func classifyPath(p string) pathClass {
	switch {
	case strings.HasPrefix(p, ProtectedPrefix):
		return pathProtected
	case strings.HasPrefix(p, AuthPagePrefix):
		return pathAuthPage
	default:
		return pathOther
	}
}

// RouteGuard redirects page traffic based on authentication state:
// anonymous requests to the dashboard go to the sign-in page, and signed-in
// requests to auth pages go back to the dashboard. Everything else passes
// through untouched. The decision is a token parse only — no store access,
// no session mutation.
func RouteGuard(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		class := classifyPath(c.Request.URL.Path)
		if class == pathOther {
			c.Next()
			return
		}

		loggedIn := false
		if token := sessionToken(c); token != "" {
			if _, err := authService.ValidateToken(token); err == nil {
				loggedIn = true
			}
		}

		switch {
		case !loggedIn && class == pathProtected:
			c.Redirect(http.StatusTemporaryRedirect, SignInPath)
			c.Abort()
		case loggedIn && class == pathAuthPage:
			c.Redirect(http.StatusTemporaryRedirect, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// sessionToken extracts the session JWT from the cookie or, failing that,
// the Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return ""
}
