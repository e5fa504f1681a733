package model

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"` // stored uppercased, the lookup key
	Discount  float64        `gorm:"not null" json:"discount"`         // percentage, 0-100
	ExpiresAt time.Time      `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Coupon) TableName() string {
	return "coupons"
}

func (c *Coupon) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
