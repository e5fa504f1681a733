package service

import (
	"errors"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

type WishlistService interface {
	ToggleWishlist(userID, productID uint) (added bool, err error)
	GetWishlist(userID uint) ([]model.WishlistItem, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ToggleWishlist adds the product to the user's wishlist if absent and
// removes it if present. The returned flag reports whether the product is
// on the list after the call.
func (s *wishlistService) ToggleWishlist(userID, productID uint) (bool, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	existing, err := s.wishlistRepo.FindByUserAndProduct(userID, productID)
	if err == nil {
		if err := s.wishlistRepo.Delete(existing.ID); err != nil {
			return false, err
		}
		logger.Info("Product removed from wishlist", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	item := &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return false, err
	}

	logger.Info("Product added to wishlist", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return true, nil
}

func (s *wishlistService) GetWishlist(userID uint) ([]model.WishlistItem, error) {
	return s.wishlistRepo.FindByUserID(userID)
}
