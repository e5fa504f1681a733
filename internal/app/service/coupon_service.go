package service

import (
	"errors"
	"time"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon has expired")
)

type CouponInput struct {
	Name      string    `json:"name" binding:"required"`
	Discount  float64   `json:"discount" binding:"required,gt=0,lte=100"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

type CouponService interface {
	CreateCoupon(input CouponInput) (*model.Coupon, error)
	GetCoupons() ([]model.Coupon, error)
	GetCouponByID(id uint) (*model.Coupon, error)
	UpdateCoupon(id uint, input CouponInput) (*model.Coupon, error)
	DeleteCoupon(id uint) error
}

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) CreateCoupon(input CouponInput) (*model.Coupon, error) {
	coupon := &model.Coupon{
		Name:      input.Name,
		Discount:  input.Discount,
		ExpiresAt: input.ExpiresAt,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}

	logger.Info("Coupon created", map[string]interface{}{
		"coupon_id": coupon.ID,
		"name":      coupon.Name,
		"discount":  coupon.Discount,
	})
	return coupon, nil
}

func (s *couponService) GetCoupons() ([]model.Coupon, error) {
	return s.couponRepo.FindAll()
}

func (s *couponService) GetCouponByID(id uint) (*model.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) UpdateCoupon(id uint, input CouponInput) (*model.Coupon, error) {
	coupon, err := s.GetCouponByID(id)
	if err != nil {
		return nil, err
	}

	coupon.Name = input.Name
	coupon.Discount = input.Discount
	coupon.ExpiresAt = input.ExpiresAt
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) DeleteCoupon(id uint) error {
	affected, err := s.couponRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponNotFound
	}

	logger.Info("Coupon deleted", map[string]interface{}{
		"coupon_id": id,
	})
	return nil
}
