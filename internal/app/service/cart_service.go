package service

import (
	"errors"
	"math"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCartNotFound = errors.New("cart not found")

type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Count     int    `json:"count" binding:"required,gt=0"`
	Color     string `json:"color"`
}

type CartService interface {
	SetCart(userID uint, items []CartItemInput) (*model.Cart, error)
	GetCart(userID uint) (*model.Cart, error)
	ApplyCoupon(userID uint, couponName string) (float64, error)
	EmptyCart(userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
	}
}

// SetCart replaces the user's cart wholesale with the submitted items. The
// unit price of each item is snapshotted from the product at this moment,
// so later price changes do not alter the cart total.
func (s *cartService) SetCart(userID uint, items []CartItemInput) (*model.Cart, error) {
	logger.Info("Setting cart", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(items),
	})

	cart := &model.Cart{UserID: userID}
	for _, item := range items {
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		cart.Items = append(cart.Items, model.CartItem{
			ProductID: product.ID,
			Count:     item.Count,
			Color:     item.Color,
			Price:     product.Price,
		})
		cart.CartTotal += product.Price * float64(item.Count)
	}

	if err := s.cartRepo.ReplaceForUser(userID, cart); err != nil {
		return nil, err
	}
	return s.cartRepo.FindByUserID(userID)
}

func (s *cartService) GetCart(userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

// ApplyCoupon computes and stores the discounted cart total, rounded to
// two decimal places.
func (s *cartService) ApplyCoupon(userID uint, couponName string) (float64, error) {
	coupon, err := s.couponRepo.FindByName(couponName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Coupon not found", map[string]interface{}{
				"name": couponName,
			})
			return 0, ErrCouponNotFound
		}
		return 0, err
	}
	if coupon.IsExpired() {
		logger.Warn("Coupon expired", map[string]interface{}{
			"coupon_id":  coupon.ID,
			"expires_at": coupon.ExpiresAt,
		})
		return 0, ErrCouponExpired
	}

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCartNotFound
		}
		return 0, err
	}
	// A zero-total cart is treated the same as a missing one.
	if cart.CartTotal == 0 {
		return 0, ErrCartNotFound
	}

	discounted := cart.CartTotal - cart.CartTotal*coupon.Discount/100
	discounted = math.Round(discounted*100) / 100

	if err := s.cartRepo.UpdateTotalAfterDiscount(cart.ID, discounted); err != nil {
		return 0, err
	}

	logger.Info("Coupon applied to cart", map[string]interface{}{
		"user_id":              userID,
		"coupon":               coupon.Name,
		"cart_total":           cart.CartTotal,
		"total_after_discount": discounted,
	})
	return discounted, nil
}

func (s *cartService) EmptyCart(userID uint) error {
	deleted, err := s.cartRepo.DeleteByUserID(userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCartNotFound
	}

	logger.Info("Cart emptied", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
