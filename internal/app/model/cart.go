package model

import (
	"time"
)

// Cart is the single active cart of a user. It is replaced wholesale when
// the user resubmits cart contents and hard-deleted when an order is
// created from it, so it carries no soft-delete column.
type Cart struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	UserID             uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CartTotal          float64    `gorm:"not null" json:"cart_total"`
	TotalAfterDiscount *float64   `json:"total_after_discount,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem snapshots the unit price at cart-build time.
type CartItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	CartID    uint    `gorm:"not null;index" json:"cart_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Count     int     `gorm:"not null" json:"count"`
	Color     string  `json:"color"`
	Price     float64 `gorm:"not null" json:"price"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
