package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireAdminJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, authService := guardTestSetup(t)

	r := gin.New()
	r.GET("/api/v1/admin/me", RequireAdminJWT(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		assert.NotNil(t, claims)
		c.String(http.StatusOK, claims.Email)
	})

	t.Run("valid bearer token is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, authService))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "owner@bakehouse.test", w.Body.String())
	})

	t.Run("valid session cookie is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: validToken(t, authService)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, authService := guardTestSetup(t)

	r := gin.New()
	r.GET("/api/v1/auth/session", OptionalJWT(authService), func(c *gin.Context) {
		if GetClaims(c) == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "authenticated")
	})

	t.Run("anonymous request still reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: validToken(t, authService)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "authenticated", w.Body.String())
	})
}
