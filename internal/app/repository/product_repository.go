package repository

import (
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductSortFields maps the public sort keys to the columns they order by.
// Anything outside this map falls back to the newest-first default.
var ProductSortFields = map[string]string{
	"created_at":  "created_at",
	"price":       "price",
	"title":       "title",
	"sold":        "sold",
	"totalrating": "total_rating",
}

// PriceRange holds the optional price bound filters. Nil means unbounded.
type PriceRange struct {
	GTE *float64
	GT  *float64
	LTE *float64
	LT  *float64
}

// ProductFilter is the validated query for the product listing. Unknown
// filter and sort keys are dropped before it is built.
type ProductFilter struct {
	CategoryID *uint
	BrandID    *uint
	ColorID    *uint
	Featured   *bool
	Title      string // substring match
	Price      PriceRange

	// SortBy is a key of ProductSortFields; SortDesc orders descending.
	SortBy   string
	SortDesc bool

	Page  int
	Limit int
}

type ProductRepository interface {
	Create(product *model.Product) error
	BulkCreate(products []model.Product, batchSize int) error
	FindByID(id uint) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindFeatured(limit int) ([]model.Product, error)
	Update(product *model.Product) error
	UpdateFields(id uint, fields map[string]interface{}) error
	ReplaceColors(product *model.Product, colors []model.Color) error
	Delete(id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"title": product.Title,
			"slug":  product.Slug,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return nil
}

// BulkCreate inserts products in batches, used by the catalog importer.
func (r *productRepository) BulkCreate(products []model.Product, batchSize int) error {
	if err := r.db.CreateInBatches(products, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create products", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}

	logger.Info("Products bulk created", map[string]interface{}{
		"count": len(products),
	})
	return nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Colors").
		Preload("Ratings").
		Preload("Ratings.User").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Colors").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindWithFilter returns one page of products matching the filter plus the
// total match count before pagination.
func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.ColorID != nil {
		query = query.
			Joins("JOIN product_colors ON product_colors.product_id = products.id").
			Where("product_colors.color_id = ?", *filter.ColorID)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Price.GTE != nil {
		query = query.Where("price >= ?", *filter.Price.GTE)
	}
	if filter.Price.GT != nil {
		query = query.Where("price > ?", *filter.Price.GT)
	}
	if filter.Price.LTE != nil {
		query = query.Where("price <= ?", *filter.Price.LTE)
	}
	if filter.Price.LT != nil {
		query = query.Where("price < ?", *filter.Price.LT)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count products", err)
		return nil, 0, err
	}

	order := "created_at DESC"
	if column, ok := ProductSortFields[filter.SortBy]; ok {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		order = column + " " + direction
	}
	query = query.Order(order)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	query = query.Offset((page - 1) * limit).Limit(limit)

	var products []model.Product
	err := query.
		Preload("Category").
		Preload("Brand").
		Preload("Colors").
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to list products", err, map[string]interface{}{
			"page":  page,
			"limit": limit,
		})
		return nil, 0, err
	}

	logger.Debug("Products listed", map[string]interface{}{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"returned": len(products),
	})
	return products, total, nil
}

// FindFeatured returns featured products newest first. A limit of zero
// returns all of them.
func (r *productRepository) FindFeatured(limit int) ([]model.Product, error) {
	query := r.db.
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Preload("Category").
		Preload("Brand").
		Preload("Colors")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to list featured products", err, map[string]interface{}{
			"limit": limit,
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		logger.Error("Failed to update product fields in database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

func (r *productRepository) ReplaceColors(product *model.Product, colors []model.Color) error {
	if err := r.db.Model(product).Association("Colors").Replace(colors); err != nil {
		logger.Error("Failed to replace product colors", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete product from database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
