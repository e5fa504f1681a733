package repository

import (
	"strings"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(coupon *model.Coupon) error
	FindByID(id uint) (*model.Coupon, error)
	FindByName(name string) (*model.Coupon, error)
	FindAll() ([]model.Coupon, error)
	Update(coupon *model.Coupon) error
	Delete(id uint) (int64, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *model.Coupon) error {
	coupon.Name = strings.ToUpper(coupon.Name)
	return r.db.Create(coupon).Error
}

func (r *couponRepository) FindByID(id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

// FindByName looks a coupon up by its uppercased name.
func (r *couponRepository) FindByName(name string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("name = ?", strings.ToUpper(name)).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindAll() ([]model.Coupon, error) {
	var coupons []model.Coupon
	if err := r.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) Update(coupon *model.Coupon) error {
	coupon.Name = strings.ToUpper(coupon.Name)
	return r.db.Save(coupon).Error
}

func (r *couponRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Coupon{}, id)
	return result.RowsAffected, result.Error
}
