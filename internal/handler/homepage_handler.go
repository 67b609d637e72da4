package handler

import (
	"net/http"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/amberoven/bakehouse-backend/internal/response"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/amberoven/bakehouse-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// HomepageHandler handles homepage content endpoints.
type HomepageHandler struct {
	homepageService *service.HomepageService
}

// NewHomepageHandler creates a new HomepageHandler.
func NewHomepageHandler(homepageService *service.HomepageService) *HomepageHandler {
	return &HomepageHandler{homepageService: homepageService}
}

// GetPublic godoc
// GET /api/v1/public/homepage
func (h *HomepageHandler) GetPublic(c *gin.Context) {
	sections, err := h.homepageService.GetSections(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// Get godoc
// GET /api/v1/admin/homepage
func (h *HomepageHandler) Get(c *gin.Context) {
	sections, err := h.homepageService.GetSections(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// Update godoc
// PUT /api/v1/admin/homepage
func (h *HomepageHandler) Update(c *gin.Context) {
	var req model.UpdateHomepageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.homepageService.UpdateSections(c.Request.Context(), req.Sections); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "homepage updated successfully"})
}
