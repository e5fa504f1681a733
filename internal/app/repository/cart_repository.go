package repository

import (
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUserID(userID uint) (*model.Cart, error)
	ReplaceForUser(userID uint, cart *model.Cart) error
	UpdateTotalAfterDiscount(cartID uint, total float64) error
	DeleteByUserID(userID uint) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByUserID(userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceForUser drops the user's existing cart and its items and inserts
// the new one in a single transaction.
func (r *cartRepository) ReplaceForUser(userID uint, cart *model.Cart) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Cart
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if err == nil {
			if err := tx.Where("cart_id = ?", existing.ID).Delete(&model.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		cart.UserID = userID
		return tx.Create(cart).Error
	})
	if err != nil {
		logger.Error("Failed to replace cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Debug("Cart replaced", map[string]interface{}{
		"user_id":    userID,
		"cart_id":    cart.ID,
		"item_count": len(cart.Items),
		"cart_total": cart.CartTotal,
	})
	return nil
}

func (r *cartRepository) UpdateTotalAfterDiscount(cartID uint, total float64) error {
	return r.db.Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("total_after_discount", total).Error
}

func (r *cartRepository) DeleteByUserID(userID uint) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&cart)
		deleted = result.RowsAffected
		return result.Error
	})
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		logger.Error("Failed to delete cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return 0, err
	}
	return deleted, nil
}
