package service

import (
	"strings"
	"testing"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	colorRepo := repository.NewColorRepository(testDB)
	return NewProductService(productRepo, colorRepo, testDB), testDB
}

func createTestUser(t *testing.T, testDB *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		FirstName:    "Test",
		Email:        email,
		PasswordHash: "hash",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func TestProductService_CreateProduct(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title:    "Wireless Mouse",
		Price:    1500,
		Quantity: 20,
		Images:   []string{"https://cdn.example.com/mouse.jpg"},
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, strings.HasPrefix(product.Slug, "wireless-mouse-"))
	assert.Equal(t, 20, product.Quantity)
	assert.Equal(t, 0, product.Sold)
}

func TestProductService_UpdateProduct_TitleRegeneratesSlug(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title: "Wireless Mouse",
		Price: 1500,
	})
	require.NoError(t, err)
	oldSlug := product.Slug

	newTitle := "Ergonomic Mouse"
	updated, err := productService.UpdateProduct(product.ID, UpdateProductInput{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ergonomic Mouse", updated.Title)
	assert.True(t, strings.HasPrefix(updated.Slug, "ergonomic-mouse-"))
	assert.NotEqual(t, oldSlug, updated.Slug)
}

func TestProductService_UpdateProduct_PriceOnlyKeepsSlug(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title: "Wireless Mouse",
		Price: 1500,
	})
	require.NoError(t, err)

	newPrice := 1200.0
	updated, err := productService.UpdateProduct(product.ID, UpdateProductInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, updated.Price)
	assert.Equal(t, product.Slug, updated.Slug)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	err := productService.DeleteProduct(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_RateProduct_MeanRounded(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title: "Wireless Mouse",
		Price: 1500,
	})
	require.NoError(t, err)

	alice := createTestUser(t, testDB, "alice@example.com")
	bob := createTestUser(t, testDB, "bob@example.com")

	_, err = productService.RateProduct(alice.ID, product.ID, 4, "good")
	require.NoError(t, err)

	rated, err := productService.RateProduct(bob.ID, product.ID, 5, "great")
	require.NoError(t, err)

	// mean(4, 5) = 4.5 -> rounds to 5
	assert.Equal(t, 5, rated.TotalRating)
	assert.Len(t, rated.Ratings, 2)
}

func TestProductService_RateProduct_ReplacesNotAppends(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title: "Wireless Mouse",
		Price: 1500,
	})
	require.NoError(t, err)

	alice := createTestUser(t, testDB, "alice@example.com")

	_, err = productService.RateProduct(alice.ID, product.ID, 2, "meh")
	require.NoError(t, err)

	rated, err := productService.RateProduct(alice.ID, product.ID, 5, "changed my mind")
	require.NoError(t, err)

	require.Len(t, rated.Ratings, 1)
	assert.Equal(t, 5, rated.Ratings[0].Star)
	assert.Equal(t, "changed my mind", rated.Ratings[0].Comment)
	assert.Equal(t, 5, rated.TotalRating)
}

func TestProductService_RateProduct_InvalidStar(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Title: "Wireless Mouse",
		Price: 1500,
	})
	require.NoError(t, err)

	alice := createTestUser(t, testDB, "alice@example.com")

	_, err = productService.RateProduct(alice.ID, product.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidStar)

	_, err = productService.RateProduct(alice.ID, product.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidStar)
}

func TestProductService_GetFeaturedProducts_ZeroLimitReturnsAll(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	for i := 0; i < 5; i++ {
		_, err := productService.CreateProduct(CreateProductInput{
			Title:      "Featured Item",
			Price:      100,
			IsFeatured: true,
		})
		require.NoError(t, err)
	}
	_, err := productService.CreateProduct(CreateProductInput{
		Title: "Regular Item",
		Price: 100,
	})
	require.NoError(t, err)

	all, err := productService.GetFeaturedProducts(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	capped, err := productService.GetFeaturedProducts(3)
	require.NoError(t, err)
	assert.Len(t, capped, 3)
}
