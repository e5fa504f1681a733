package controller

import (
	"errors"
	"net/http"

	"github.com/dukastore/dukastore-backend/internal/app/service"
	apperrors "github.com/dukastore/dukastore-backend/internal/errors"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type SetCartRequest struct {
	Items []service.CartItemInput `json:"items" binding:"required,dive"`
}

type ApplyCouponRequest struct {
	Coupon string `json:"coupon" binding:"required"`
}

// SetCart replaces the caller's cart with the submitted items
// POST /api/v1/cart
func (ctrl *CartController) SetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	var req SetCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart payload", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid cart data")
		return
	}

	cart, err := ctrl.cartService.SetCart(userID, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "One of the products no longer exists")
			return
		}
		log.Error("Failed to set cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// GetCart returns the caller's cart
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	cart, err := ctrl.cartService.GetCart(userID)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			apperrors.NotFound(c, apperrors.CartNotFound, "Cart not found")
			return
		}
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// ApplyCoupon stores the discounted total on the caller's cart
// POST /api/v1/cart/coupon
func (ctrl *CartController) ApplyCoupon(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Coupon name is required")
		return
	}

	total, err := ctrl.cartService.ApplyCoupon(userID, req.Coupon)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			apperrors.NotFound(c, apperrors.CouponNotFound, "Coupon not found")
		case errors.Is(err, service.ErrCouponExpired):
			apperrors.BadRequest(c, apperrors.CouponExpired, "This coupon has expired")
		case errors.Is(err, service.ErrCartNotFound):
			apperrors.NotFound(c, apperrors.CartNotFound, "Cart not found")
		default:
			log.Error("Failed to apply coupon", err, map[string]interface{}{
				"user_id": userID,
				"coupon":  req.Coupon,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "apply coupon")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalAfterDiscount": total,
	})
}

// EmptyCart deletes the caller's cart
// DELETE /api/v1/cart
func (ctrl *CartController) EmptyCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	if err := ctrl.cartService.EmptyCart(userID); err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			apperrors.NotFound(c, apperrors.CartNotFound, "Cart not found")
			return
		}
		log.Error("Failed to empty cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "empty cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart emptied"})
}
