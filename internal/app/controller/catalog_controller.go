package controller

import (
	"errors"
	"net/http"

	"github.com/dukastore/dukastore-backend/internal/app/service"
	apperrors "github.com/dukastore/dukastore-backend/internal/errors"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the taxonomy endpoints: categories, brands and
// colors share one controller because the handlers are near-identical.
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

type CategoryRequest struct {
	Title string `json:"title" binding:"required"`
	Icon  string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Title *string `json:"title"`
	Icon  *string `json:"icon"`
}

type BrandRequest struct {
	Title string `json:"title" binding:"required"`
}

type ColorRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

type UpdateColorRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// POST /api/v1/categories
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Category title is required")
		return
	}

	category, err := ctrl.catalogService.CreateCategory(req.Title, req.Icon)
	if err != nil {
		log.Error("Failed to create category", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GET /api/v1/categories
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.GetCategories()
	if err != nil {
		log.Error("Failed to list categories", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GET /api/v1/categories/:id
func (ctrl *CatalogController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.catalogService.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Category not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// PUT /api/v1/categories/:id
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid category data")
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(id, req.Title, req.Icon)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Category not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DELETE /api/v1/categories/:id
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Category not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// POST /api/v1/brands
func (ctrl *CatalogController) CreateBrand(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Brand title is required")
		return
	}

	brand, err := ctrl.catalogService.CreateBrand(req.Title)
	if err != nil {
		log.Error("Failed to create brand", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create brand")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"brand": brand})
}

// GET /api/v1/brands
func (ctrl *CatalogController) GetBrands(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	brands, err := ctrl.catalogService.GetBrands()
	if err != nil {
		log.Error("Failed to list brands", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list brands")
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GET /api/v1/brands/:id
func (ctrl *CatalogController) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	brand, err := ctrl.catalogService.GetBrandByID(id)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Brand not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get brand")
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// PUT /api/v1/brands/:id
func (ctrl *CatalogController) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Brand title is required")
		return
	}

	brand, err := ctrl.catalogService.UpdateBrand(id, req.Title)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Brand not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update brand")
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// DELETE /api/v1/brands/:id
func (ctrl *CatalogController) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteBrand(id); err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Brand not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete brand")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

// POST /api/v1/colors
func (ctrl *CatalogController) CreateColor(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Color name is required")
		return
	}

	color, err := ctrl.catalogService.CreateColor(req.Name, req.Code)
	if err != nil {
		log.Error("Failed to create color", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create color")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"color": color})
}

// GET /api/v1/colors
func (ctrl *CatalogController) GetColors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	colors, err := ctrl.catalogService.GetColors()
	if err != nil {
		log.Error("Failed to list colors", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list colors")
		return
	}

	c.JSON(http.StatusOK, gin.H{"colors": colors})
}

// GET /api/v1/colors/:id
func (ctrl *CatalogController) GetColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	color, err := ctrl.catalogService.GetColorByID(id)
	if err != nil {
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Color not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get color")
		return
	}

	c.JSON(http.StatusOK, gin.H{"color": color})
}

// PUT /api/v1/colors/:id
func (ctrl *CatalogController) UpdateColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid color data")
		return
	}

	color, err := ctrl.catalogService.UpdateColor(id, req.Name, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Color not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update color")
		return
	}

	c.JSON(http.StatusOK, gin.H{"color": color})
}

// DELETE /api/v1/colors/:id
func (ctrl *CatalogController) DeleteColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteColor(id); err != nil {
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Color not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete color")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Color deleted successfully"})
}
