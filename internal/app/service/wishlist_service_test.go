package service

import (
	"testing"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) (WishlistService, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	wishlistRepo := repository.NewWishlistRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	wishlistService := NewWishlistService(wishlistRepo, productRepo)

	user := createTestUser(t, testDB, "wisher@example.com")

	product := &model.Product{
		Title:    "Wireless Mouse",
		Slug:     "wireless-mouse-1",
		Price:    50,
		Quantity: 10,
	}
	require.NoError(t, testDB.Create(product).Error)

	return wishlistService, user, product, testDB
}

func TestWishlistService_ToggleIsItsOwnInverse(t *testing.T) {
	wishlistService, user, product, _ := setupWishlistServiceTest(t)

	added, err := wishlistService.ToggleWishlist(user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)

	items, err := wishlistService.GetWishlist(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)

	// Toggling again removes it
	added, err = wishlistService.ToggleWishlist(user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, added)

	items, err = wishlistService.GetWishlist(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	// And a third toggle adds it back
	added, err = wishlistService.ToggleWishlist(user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestWishlistService_Toggle_UnknownProduct(t *testing.T) {
	wishlistService, user, _, _ := setupWishlistServiceTest(t)

	_, err := wishlistService.ToggleWishlist(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistService_GetWishlist_PerUser(t *testing.T) {
	wishlistService, user, product, testDB := setupWishlistServiceTest(t)

	other := createTestUser(t, testDB, "other@example.com")

	_, err := wishlistService.ToggleWishlist(user.ID, product.ID)
	require.NoError(t, err)

	items, err := wishlistService.GetWishlist(other.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}
