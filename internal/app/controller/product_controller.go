package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/app/service"
	apperrors "github.com/dukastore/dukastore-backend/internal/errors"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type RateProductRequest struct {
	Star    int    `json:"star" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// parseProductFilter builds the listing filter from the query string.
// Unknown filter keys and malformed values are simply ignored.
func parseProductFilter(c *gin.Context) repository.ProductFilter {
	filter := repository.ProductFilter{
		Page:  1,
		Limit: 20,
	}

	if v, err := strconv.ParseUint(c.Query("category_id"), 10, 32); err == nil {
		id := uint(v)
		filter.CategoryID = &id
	}
	if v, err := strconv.ParseUint(c.Query("brand_id"), 10, 32); err == nil {
		id := uint(v)
		filter.BrandID = &id
	}
	if v, err := strconv.ParseUint(c.Query("color_id"), 10, 32); err == nil {
		id := uint(v)
		filter.ColorID = &id
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	filter.Title = c.Query("title")

	if v, err := strconv.ParseFloat(c.Query("price[gte]"), 64); err == nil {
		filter.Price.GTE = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price[gt]"), 64); err == nil {
		filter.Price.GT = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price[lte]"), 64); err == nil {
		filter.Price.LTE = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price[lt]"), 64); err == nil {
		filter.Price.LT = &v
	}

	if sort := c.Query("sort"); sort != "" {
		filter.SortDesc = strings.HasPrefix(sort, "-")
		filter.SortBy = strings.TrimPrefix(sort, "-")
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		filter.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		filter.Limit = v
	}

	return filter
}

// CreateProduct adds a product to the catalog
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.CreateProduct(req)
	if err != nil {
		log.Error("Failed to create product", err, map[string]interface{}{
			"title": req.Title,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProducts lists products with filtering, sorting and pagination
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := parseProductFilter(c)
	products, total, err := ctrl.productService.GetProducts(filter)
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      products,
		"totalProducts": total,
		"page":          filter.Page,
		"limit":         filter.Limit,
	})
}

// GetFeaturedProducts lists featured products; limit 0 means all
// GET /api/v1/products/featured?limit=8
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	products, err := ctrl.productService.GetFeaturedProducts(limit)
	if err != nil {
		log.Error("Failed to list featured products", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one product with its relations and ratings
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// UpdateProduct applies a partial update to a product
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product from the catalog
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// RateProduct records or replaces the caller's star rating
// PUT /api/v1/products/:id/rating
func (ctrl *ProductController) RateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ProductInvalidStar, "Star rating must be between 1 and 5")
		return
	}

	product, err := ctrl.productService.RateProduct(userID, id, req.Star, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		if errors.Is(err, service.ErrInvalidStar) {
			apperrors.BadRequest(c, apperrors.ProductInvalidStar, "Star rating must be between 1 and 5")
			return
		}
		log.Error("Failed to rate product", err, map[string]interface{}{
			"product_id": id,
			"user_id":    userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "rate product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating saved",
		"product": product,
	})
}
