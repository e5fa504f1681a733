package repository

import (
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	FindByUserAndProduct(userID, productID uint) (*model.WishlistItem, error)
	FindByUserID(userID uint) ([]model.WishlistItem, error)
	Create(item *model.WishlistItem) error
	Delete(id uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) FindByUserAndProduct(userID, productID uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.db.
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) FindByUserID(userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := r.db.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) Create(item *model.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) Delete(id uint) error {
	return r.db.Delete(&model.WishlistItem{}, id).Error
}
