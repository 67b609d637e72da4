package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/amberoven/bakehouse-backend/internal/response"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/amberoven/bakehouse-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ProductHandler handles public and admin product endpoints.
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListPublic godoc
// GET /api/v1/public/products?category=<slug>
// Lists available products for one category.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	slug := c.Query("category")
	if slug == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	products, err := h.catalogService.ListProductsByCategory(c.Request.Context(), slug)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// List godoc
// GET /api/v1/admin/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalogService.ListAllProducts(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// Get godoc
// GET /api/v1/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// Create godoc
// POST /api/v1/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.ProductRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	product := productFromRequest(&req)
	if err := h.catalogService.CreateProduct(c.Request.Context(), product); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// Update godoc
// PUT /api/v1/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ProductRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	product := productFromRequest(&req)
	product.ID = id
	if err := h.catalogService.UpdateProduct(c.Request.Context(), product); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// Delete godoc
// DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func productFromRequest(req *model.ProductRequest) *model.Product {
	return &model.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Available:   *req.Available,
	}
}
