package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
)

// orderCurrency is the fixed settlement currency of the store.
const orderCurrency = "ksh"

type OrderService interface {
	CreateOrder(userID uint, method model.PaymentMethod, couponApplied bool) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(orderID uint) (*model.Order, error)
	GetAllOrders() ([]model.Order, error)
	UpdateOrderStatus(orderID uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	db        *gorm.DB
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	db *gorm.DB,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		db:        db,
	}
}

// CreateOrder turns the user's cart into an order. The whole conversion is
// one transaction: the order and its items are written, each product's
// stock is decremented and sold count incremented, and the cart is
// deleted. A coupon-discounted total is used only when the caller says the
// coupon was applied and a discounted total exists on the cart.
func (s *orderService) CreateOrder(userID uint, method model.PaymentMethod, couponApplied bool) (*model.Order, error) {
	if !method.Valid() {
		logger.Warn("Order rejected: unsupported payment method", map[string]interface{}{
			"user_id": userID,
			"method":  method,
		})
		return nil, ErrInvalidPaymentMethod
	}

	logger.Info("Creating order", map[string]interface{}{
		"user_id":        userID,
		"method":         method,
		"coupon_applied": couponApplied,
	})

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	amount := cart.CartTotal
	if couponApplied && cart.TotalAfterDiscount != nil {
		amount = *cart.TotalAfterDiscount
	}

	status := model.OrderStatusNotProcessed
	if method == model.PaymentMethodCOD {
		status = model.OrderStatusCashOnDelivery
	}

	order := &model.Order{
		UserID:      userID,
		OrderStatus: status,
		PaymentIntent: model.PaymentIntent{
			PaymentID: uuid.NewString(),
			Method:    method,
			Amount:    amount,
			Status:    string(status),
			Currency:  orderCurrency,
			CreatedAt: time.Now(),
		},
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Count:     item.Count,
			Color:     item.Color,
			Price:     item.Price,
		})
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order creation, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	for _, item := range cart.Items {
		result := tx.Model(&model.Product{}).
			Where("id = ?", item.ProductID).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity - ?", item.Count),
				"sold":     gorm.Expr("sold + ?", item.Count),
			})
		if result.Error != nil {
			tx.Rollback()
			logger.Error("Failed to adjust product stock", result.Error, map[string]interface{}{
				"product_id": item.ProductID,
			})
			return nil, result.Error
		}
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Delete(cart).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":   order.ID,
		"user_id":    userID,
		"amount":     amount,
		"status":     status,
		"item_count": len(order.Items),
	})
	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(userID)
}

func (s *orderService) GetOrderByID(orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

// UpdateOrderStatus moves an order to one of the known statuses. The
// payment record's status field is kept in step.
func (s *orderService) UpdateOrderStatus(orderID uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		logger.Warn("Rejected unknown order status", map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		return nil, ErrInvalidOrderStatus
	}

	affected, err := s.orderRepo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return s.orderRepo.FindByID(orderID)
}
