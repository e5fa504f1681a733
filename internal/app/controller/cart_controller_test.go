package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func setupCartControllerTest(t *testing.T) (*CartController, *gin.Engine, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	couponRepo := repository.NewCouponRepository(testDB)
	cartService := service.NewCartService(cartRepo, productRepo, couponRepo)
	cartController := NewCartController(cartService)

	user := &model.User{
		FirstName:    "Shopper",
		Email:        "shopper@example.com",
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{
		Title:    "Running Shoes",
		Slug:     "running-shoes-1",
		Price:    80,
		Quantity: 20,
	}
	require.NoError(t, testDB.Create(product).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UserRoleKey, user.Role)
		c.Next()
	})

	router.POST("/cart", cartController.SetCart)
	router.GET("/cart", cartController.GetCart)
	router.POST("/cart/coupon", cartController.ApplyCoupon)
	router.DELETE("/cart", cartController.EmptyCart)

	return cartController, router, product, testDB
}

func cartRequest(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
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

func TestCartController_SetAndGetCart(t *testing.T) {
	_, router, product, _ := setupCartControllerTest(t)

	w := cartRequest(t, router, http.MethodPost, "/cart", SetCartRequest{
		Items: []service.CartItemInput{
			{ProductID: product.ID, Count: 2, Color: "black"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	cart := response["cart"].(map[string]interface{})
	assert.Equal(t, float64(160), cart["cart_total"])

	w = cartRequest(t, router, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	cart = response["cart"].(map[string]interface{})
	items := cart["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), item["count"])
	assert.Equal(t, float64(80), item["price"])
	assert.Equal(t, "black", item["color"])
}

func TestCartController_SetCart_UnknownProduct(t *testing.T) {
	_, router, _, _ := setupCartControllerTest(t)

	w := cartRequest(t, router, http.MethodPost, "/cart", SetCartRequest{
		Items: []service.CartItemInput{
			{ProductID: 9999, Count: 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestCartController_SetCart_InvalidPayload(t *testing.T) {
	_, router, product, _ := setupCartControllerTest(t)

	// Zero count fails the dive validation
	w := cartRequest(t, router, http.MethodPost, "/cart", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": product.ID, "count": 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestCartController_ApplyCoupon(t *testing.T) {
	_, router, product, testDB := setupCartControllerTest(t)

	require.NoError(t, testDB.Create(&model.Coupon{
		Name:      "SAVE10",
		Discount:  10,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	w := cartRequest(t, router, http.MethodPost, "/cart", SetCartRequest{
		Items: []service.CartItemInput{
			{ProductID: product.ID, Count: 2}, // total 160
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = cartRequest(t, router, http.MethodPost, "/cart/coupon", ApplyCouponRequest{Coupon: "save10"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(144), response["totalAfterDiscount"])
}

func TestCartController_ApplyCoupon_Expired(t *testing.T) {
	_, router, product, testDB := setupCartControllerTest(t)

	require.NoError(t, testDB.Create(&model.Coupon{
		Name:      "OLD",
		Discount:  50,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	w := cartRequest(t, router, http.MethodPost, "/cart", SetCartRequest{
		Items: []service.CartItemInput{
			{ProductID: product.ID, Count: 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = cartRequest(t, router, http.MethodPost, "/cart/coupon", ApplyCouponRequest{Coupon: "OLD"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "COUPON_EXPIRED")
}

func TestCartController_EmptyCart(t *testing.T) {
	_, router, product, _ := setupCartControllerTest(t)

	w := cartRequest(t, router, http.MethodPost, "/cart", SetCartRequest{
		Items: []service.CartItemInput{
			{ProductID: product.ID, Count: 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = cartRequest(t, router, http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cart emptied")

	// Emptying again reports not found
	w = cartRequest(t, router, http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CART_NOT_FOUND")
}
