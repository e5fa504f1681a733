package repository

import (
	"fmt"
	"testing"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepoTest(t *testing.T) (ProductRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewProductRepository(testDB), testDB
}

func seedProducts(t *testing.T, testDB *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		product := model.Product{
			Title:    fmt.Sprintf("Product %02d", i),
			Slug:     fmt.Sprintf("product-%02d", i),
			Price:    float64(i * 10),
			Quantity: 5,
		}
		require.NoError(t, testDB.Create(&product).Error)
	}
}

func TestProductRepository_Pagination(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)
	seedProducts(t, testDB, 12)

	products, total, err := repo.FindWithFilter(ProductFilter{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, products, 5)

	// Last page holds the remainder
	products, total, err = repo.FindWithFilter(ProductFilter{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, products, 2)

	// Past the end is empty, not an error
	products, _, err = repo.FindWithFilter(ProductFilter{Page: 9, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, products, 0)
}

func TestProductRepository_PriceFilters(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)
	seedProducts(t, testDB, 10) // prices 10..100

	gte, lte := 30.0, 70.0
	products, total, err := repo.FindWithFilter(ProductFilter{
		Price: PriceRange{GTE: &gte, LTE: &lte},
		Limit: 100,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total) // 30, 40, 50, 60, 70
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 30.0)
		assert.LessOrEqual(t, p.Price, 70.0)
	}

	gt := 90.0
	_, total, err = repo.FindWithFilter(ProductFilter{
		Price: PriceRange{GT: &gt},
		Limit: 100,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total) // only 100
}

func TestProductRepository_SortAllowList(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)
	seedProducts(t, testDB, 3)

	// price ascending
	products, _, err := repo.FindWithFilter(ProductFilter{SortBy: "price", Limit: 10})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, 10.0, products[0].Price)
	assert.Equal(t, 30.0, products[2].Price)

	// price descending
	products, _, err = repo.FindWithFilter(ProductFilter{SortBy: "price", SortDesc: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 30.0, products[0].Price)

	// unknown sort key falls back to the default without error
	_, _, err = repo.FindWithFilter(ProductFilter{SortBy: "password_hash", Limit: 10})
	require.NoError(t, err)
}

func TestProductRepository_TitleFilter(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)
	seedProducts(t, testDB, 3) // Product 01..03

	products, total, err := repo.FindWithFilter(ProductFilter{Title: "02", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Product 02", products[0].Title)
}

func TestProductRepository_CategoryFilter(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)

	category := model.Category{Title: "Electronics"}
	require.NoError(t, testDB.Create(&category).Error)

	seedProducts(t, testDB, 4)
	require.NoError(t, testDB.Model(&model.Product{}).
		Where("price <= ?", 20).
		Update("category_id", category.ID).Error)

	products, total, err := repo.FindWithFilter(ProductFilter{
		CategoryID: &category.ID,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range products {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, category.ID, *p.CategoryID)
	}
}

func TestProductRepository_FeaturedLimit(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)

	for i := 0; i < 4; i++ {
		product := model.Product{
			Title:      fmt.Sprintf("Featured %d", i),
			Slug:       fmt.Sprintf("featured-%d", i),
			Price:      10,
			IsFeatured: true,
		}
		require.NoError(t, testDB.Create(&product).Error)
	}

	all, err := repo.FindFeatured(0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	capped, err := repo.FindFeatured(2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestProductRepository_DeleteReportsRows(t *testing.T) {
	repo, testDB := setupProductRepoTest(t)
	seedProducts(t, testDB, 1)

	var product model.Product
	require.NoError(t, testDB.First(&product).Error)

	affected, err := repo.Delete(product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
