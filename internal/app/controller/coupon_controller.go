package controller

import (
	"errors"
	"net/http"

	"github.com/dukastore/dukastore-backend/internal/app/service"
	apperrors "github.com/dukastore/dukastore-backend/internal/errors"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CouponController struct {
	couponService service.CouponService
}

func NewCouponController(couponService service.CouponService) *CouponController {
	return &CouponController{couponService: couponService}
}

// POST /api/v1/coupons
func (ctrl *CouponController) CreateCoupon(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, discount (1-100) and expiry are required")
		return
	}

	coupon, err := ctrl.couponService.CreateCoupon(req)
	if err != nil {
		log.Error("Failed to create coupon", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create coupon")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"coupon": coupon})
}

// GET /api/v1/coupons
func (ctrl *CouponController) GetCoupons(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	coupons, err := ctrl.couponService.GetCoupons()
	if err != nil {
		log.Error("Failed to list coupons", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list coupons")
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// GET /api/v1/coupons/:id
func (ctrl *CouponController) GetCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	coupon, err := ctrl.couponService.GetCouponByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			apperrors.NotFound(c, apperrors.CouponNotFound, "Coupon not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get coupon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupon": coupon})
}

// PUT /api/v1/coupons/:id
func (ctrl *CouponController) UpdateCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, discount (1-100) and expiry are required")
		return
	}

	coupon, err := ctrl.couponService.UpdateCoupon(id, req)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			apperrors.NotFound(c, apperrors.CouponNotFound, "Coupon not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update coupon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupon": coupon})
}

// DELETE /api/v1/coupons/:id
func (ctrl *CouponController) DeleteCoupon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.couponService.DeleteCoupon(id); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			apperrors.NotFound(c, apperrors.CouponNotFound, "Coupon not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete coupon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
