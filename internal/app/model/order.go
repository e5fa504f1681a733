package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNotProcessed   OrderStatus = "Not Processed"
	OrderStatusCashOnDelivery OrderStatus = "Cash on Delivery"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusDispatched     OrderStatus = "Dispatched"
	OrderStatusCancelled      OrderStatus = "Cancelled"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// ValidOrderStatuses is the closed set an admin may move an order to.
var ValidOrderStatuses = []OrderStatus{
	OrderStatusNotProcessed,
	OrderStatusCashOnDelivery,
	OrderStatusProcessing,
	OrderStatusDispatched,
	OrderStatusCancelled,
	OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodPaid PaymentMethod = "PAID"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodPaid
}

// PaymentIntent describes the chosen payment method and amount. It is a
// record, not a gateway integration.
type PaymentIntent struct {
	PaymentID string        `gorm:"type:varchar(64)" json:"id"`
	Method    PaymentMethod `gorm:"type:varchar(20)" json:"method"`
	Amount    float64       `json:"amount"`
	Status    string        `gorm:"type:varchar(30)" json:"status"`
	Currency  string        `gorm:"type:varchar(10)" json:"currency"`
	CreatedAt time.Time     `json:"created"`
}

type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	OrderStatus   OrderStatus    `gorm:"type:varchar(30);default:'Not Processed'" json:"order_status"`
	PaymentIntent PaymentIntent  `gorm:"embedded;embeddedPrefix:payment_" json:"payment_intent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User  User        `gorm:"foreignKey:UserID" json:"order_by,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item copied from the cart at order creation.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"not null;index" json:"order_id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Count     int            `gorm:"not null" json:"count"`
	Color     string         `json:"color"`
	Price     float64        `gorm:"not null" json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
