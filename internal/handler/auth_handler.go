package handler

import (
	"errors"
	"net/http"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/middleware"
	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/amberoven/bakehouse-backend/internal/response"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/amberoven/bakehouse-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the sign-in/sign-out/session surface.
type AuthHandler struct {
	cfg         *config.Config
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authService: authService}
}

// SignIn godoc
// POST /api/v1/auth/signin
// Validates credentials, applies the allow-list gate, and issues a session
// JWT as both cookie and body token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, roleName, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrEmailNotAllowed):
			response.Fail(c, http.StatusUnauthorized, response.ErrEmailNotAllowed)
		default:
			// Store failures deny the login (fail closed).
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.JWTExpiry.Seconds()))

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"role_name": roleName,
		},
	})
}

// SignOut godoc
// POST /api/v1/auth/signout
// Deletes the session row and clears the cookie.
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), claims.ID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{})
}

// GetSession godoc
// GET /api/v1/auth/session
// Returns the current session claims, or null data when anonymous.
func (h *AuthHandler) GetSession(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user_id":   claims.UserID,
		"email":     claims.Email,
		"role_name": claims.RoleName,
		"expires":   claims.ExpiresAt.Time,
	})
}

// Me godoc
// GET /api/v1/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"role_name": claims.RoleName,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}
