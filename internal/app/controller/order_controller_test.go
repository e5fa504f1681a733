package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/app/service"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderControllerFixture struct {
	router  *gin.Engine
	user    *model.User
	product *model.Product
	db      *gorm.DB
}

func setupOrderControllerTest(t *testing.T, role model.UserRole) *orderControllerFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	cartRepo := repository.NewCartRepository(testDB)
	orderService := service.NewOrderService(orderRepo, cartRepo, testDB)
	orderController := NewOrderController(orderService)

	user := &model.User{
		FirstName:    "Buyer",
		Email:        "buyer@example.com",
		PasswordHash: "hashed-password",
		Role:         role,
	}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{
		Title:    "Desk Lamp",
		Slug:     "desk-lamp-1",
		Price:    45,
		Quantity: 10,
	}
	require.NoError(t, testDB.Create(product).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UserRoleKey, user.Role)
		c.Next()
	})

	router.POST("/orders", orderController.CreateOrder)
	router.GET("/orders", orderController.GetMyOrders)
	router.GET("/orders/:id", orderController.GetOrder)
	router.PUT("/orders/:id/status", orderController.UpdateOrderStatus)

	return &orderControllerFixture{
		router:  router,
		user:    user,
		product: product,
		db:      testDB,
	}
}

func (f *orderControllerFixture) fillCart(t *testing.T, count int) {
	t.Helper()
	cart := &model.Cart{
		UserID:    f.user.ID,
		CartTotal: f.product.Price * float64(count),
		Items: []model.CartItem{
			{ProductID: f.product.ID, Count: count, Price: f.product.Price},
		},
	}
	require.NoError(t, f.db.Create(cart).Error)
}

func orderJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderController_CreateOrder_CashOnDelivery(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleUser)
	f.fillCart(t, 2)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "COD"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Order placed successfully", response["message"])

	order := response["order"].(map[string]interface{})
	assert.Equal(t, "Cash on Delivery", order["order_status"])

	intent := order["payment_intent"].(map[string]interface{})
	assert.Equal(t, "COD", intent["method"])
	assert.Equal(t, float64(90), intent["amount"])
	assert.Equal(t, "ksh", intent["currency"])

	items := order["items"].([]interface{})
	require.Len(t, items, 1)

	// The cart is consumed
	var cartCount int64
	f.db.Model(&model.Cart{}).Where("user_id = ?", f.user.ID).Count(&cartCount)
	assert.EqualValues(t, 0, cartCount)
}

func TestOrderController_CreateOrder_InvalidMethod(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleUser)
	f.fillCart(t, 1)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "BITCOIN"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ORDER_INVALID_PAYMENT_METHOD")
}

func TestOrderController_CreateOrder_NoCart(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleUser)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "COD"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CART_NOT_FOUND")
}

func TestOrderController_GetMyOrders(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleUser)
	f.fillCart(t, 1)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "PAID"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = orderJSON(t, f.router, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])

	orders := response["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, "Not Processed", orders[0].(map[string]interface{})["order_status"])
}

func TestOrderController_GetOrder_OtherUsersOrderForbidden(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleUser)

	other := &model.User{
		FirstName:    "Other",
		Email:        "other@example.com",
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
	}
	require.NoError(t, f.db.Create(other).Error)

	order := &model.Order{
		UserID:      other.ID,
		OrderStatus: model.OrderStatusNotProcessed,
	}
	require.NoError(t, f.db.Create(order).Error)

	w := orderJSON(t, f.router, http.MethodGet, "/orders/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderController_UpdateOrderStatus(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleAdmin)
	f.fillCart(t, 1)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "COD"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = orderJSON(t, f.router, http.MethodPut, "/orders/1/status", UpdateOrderStatusRequest{Status: "Dispatched"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	order := response["order"].(map[string]interface{})
	assert.Equal(t, "Dispatched", order["order_status"])
}

func TestOrderController_UpdateOrderStatus_Unknown(t *testing.T) {
	f := setupOrderControllerTest(t, model.RoleAdmin)
	f.fillCart(t, 1)

	w := orderJSON(t, f.router, http.MethodPost, "/orders", CreateOrderRequest{Method: "COD"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = orderJSON(t, f.router, http.MethodPut, "/orders/1/status", UpdateOrderStatusRequest{Status: "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ORDER_INVALID_STATUS")
}
