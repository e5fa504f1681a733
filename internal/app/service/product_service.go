package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"github.com/dukastore/dukastore-backend/pkg/util"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidStar     = errors.New("star rating must be between 1 and 5")
)

type CreateProductInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
	Images      []string `json:"images"`
	CategoryID  *uint    `json:"category_id"`
	BrandID     *uint    `json:"brand_id"`
	ColorIDs    []uint   `json:"color_ids"`
	IsFeatured  bool     `json:"is_featured"`
}

type UpdateProductInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	Images      *[]string `json:"images"`
	CategoryID  *uint     `json:"category_id"`
	BrandID     *uint     `json:"brand_id"`
	ColorIDs    *[]uint   `json:"color_ids"`
	IsFeatured  *bool     `json:"is_featured"`
}

type ProductService interface {
	CreateProduct(input CreateProductInput) (*model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProducts(filter repository.ProductFilter) ([]model.Product, int64, error)
	GetFeaturedProducts(limit int) ([]model.Product, error)
	UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
	RateProduct(userID, productID uint, star int, comment string) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	colorRepo   repository.ColorRepository
	db          *gorm.DB
}

func NewProductService(
	productRepo repository.ProductRepository,
	colorRepo repository.ColorRepository,
	db *gorm.DB,
) ProductService {
	return &productService{
		productRepo: productRepo,
		colorRepo:   colorRepo,
		db:          db,
	}
}

func (s *productService) CreateProduct(input CreateProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"title": input.Title,
	})

	product := &model.Product{
		Title:       input.Title,
		Slug:        util.ProductSlug(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Images:      pq.StringArray(input.Images),
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		IsFeatured:  input.IsFeatured,
	}

	if len(input.ColorIDs) > 0 {
		colors, err := s.colorRepo.FindByIDs(input.ColorIDs)
		if err != nil {
			return nil, err
		}
		product.Colors = colors
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(product.ID)
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProducts(filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetFeaturedProducts(limit int) ([]model.Product, error) {
	return s.productRepo.FindFeatured(limit)
}

// UpdateProduct applies a partial update. A new title regenerates the slug.
func (s *productService) UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Title != nil && *input.Title != product.Title {
		fields["title"] = *input.Title
		fields["slug"] = util.ProductSlug(*input.Title)
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Quantity != nil {
		fields["quantity"] = *input.Quantity
	}
	if input.Images != nil {
		fields["images"] = pq.StringArray(*input.Images)
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.BrandID != nil {
		fields["brand_id"] = *input.BrandID
	}
	if input.IsFeatured != nil {
		fields["is_featured"] = *input.IsFeatured
	}

	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	if input.ColorIDs != nil {
		colors, err := s.colorRepo.FindByIDs(*input.ColorIDs)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplaceColors(product, colors); err != nil {
			return nil, err
		}
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": id,
		"fields":     len(fields),
	})
	return s.productRepo.FindByID(id)
}

func (s *productService) DeleteProduct(id uint) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// RateProduct records the user's star rating of a product. A second rating
// by the same user replaces the first, and the product's aggregate rating
// is recomputed as the rounded mean of all stars, all inside one
// transaction.
func (s *productService) RateProduct(userID, productID uint, star int, comment string) (*model.Product, error) {
	if star < 1 || star > 5 {
		return nil, ErrInvalidStar
	}

	logger.Info("Rating product", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"star":       star,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during product rating, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"product_id": productID,
			})
		}
	}()

	var product model.Product
	if err := tx.First(&product, productID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var rating model.Rating
	err := tx.Where("product_id = ? AND user_id = ?", productID, userID).First(&rating).Error
	switch {
	case err == nil:
		rating.Star = star
		rating.Comment = comment
		if err := tx.Save(&rating).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = model.Rating{
			ProductID: productID,
			UserID:    userID,
			Star:      star,
			Comment:   comment,
		}
		if err := tx.Create(&rating).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	default:
		tx.Rollback()
		return nil, err
	}

	var ratings []model.Rating
	if err := tx.Where("product_id = ?", productID).Find(&ratings).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Star
	}
	total := int(math.Round(float64(sum) / float64(len(ratings))))

	if err := tx.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("total_rating", total).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit rating transaction", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	logger.Debug("Product rating recomputed", map[string]interface{}{
		"product_id":   productID,
		"rating_count": len(ratings),
		"total_rating": total,
	})
	return s.productRepo.FindByID(productID)
}
