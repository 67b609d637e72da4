package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardTestSetup(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "guard-test-secret", JWTExpiry: time.Hour}
	authService := service.NewAuthService(cfg, nil, nil, nil, zerolog.Nop())

	r := gin.New()
	r.Use(RouteGuard(authService))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/dashboard", ok)
	r.GET("/dashboard/homepage", ok)
	r.GET("/auth/signin", ok)
	r.GET("/", ok)

	return r, authService
}

func validToken(t *testing.T, authService *service.AuthService) string {
	t.Helper()
	token, _, _, err := authService.GenerateToken(1, "owner@bakehouse.test", "admin")
	require.NoError(t, err)
	return token
}

func TestRouteGuard(t *testing.T) {
	t.Run("anonymous request to protected path redirects to sign-in", func(t *testing.T) {
		r, _ := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/homepage", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, SignInPath, w.Header().Get("Location"))
	})

	t.Run("authenticated request to auth page redirects to dashboard", func(t *testing.T) {
		r, authService := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/auth/signin", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: validToken(t, authService)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, DashboardPath, w.Header().Get("Location"))
	})

	t.Run("authenticated request to protected path passes through", func(t *testing.T) {
		r, authService := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/homepage", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: validToken(t, authService)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous request to auth page passes through", func(t *testing.T) {
		r, _ := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/auth/signin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unmatched path passes through regardless of auth state", func(t *testing.T) {
		r, authService := guardTestSetup(t)

		anon := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, anon)
		assert.Equal(t, http.StatusOK, w.Code)

		authed := httptest.NewRequest(http.MethodGet, "/", nil)
		authed.AddCookie(&http.Cookie{Name: SessionCookieName, Value: validToken(t, authService)})
		w = httptest.NewRecorder()
		r.ServeHTTP(w, authed)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("garbage token counts as anonymous", func(t *testing.T) {
		r, _ := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, SignInPath, w.Header().Get("Location"))
	})

	t.Run("bearer header works in place of the cookie", func(t *testing.T) {
		r, authService := guardTestSetup(t)

		req := httptest.NewRequest(http.MethodGet, "/auth/signin", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, authService))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, DashboardPath, w.Header().Get("Location"))
	})
}

func TestClassifyPath(t *testing.T) {
	assert.Equal(t, pathProtected, classifyPath("/dashboard"))
	assert.Equal(t, pathProtected, classifyPath("/dashboard/products/3"))
	assert.Equal(t, pathAuthPage, classifyPath("/auth/signin"))
	assert.Equal(t, pathOther, classifyPath("/"))
	assert.Equal(t, pathOther, classifyPath("/api/v1/public/categories"))
	assert.Equal(t, pathOther, classifyPath("/health"))
}
