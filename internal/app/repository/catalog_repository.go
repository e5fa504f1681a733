package repository

import (
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"gorm.io/gorm"
)

// Category, brand and color share the same flat CRUD shape, so their
// repositories live together here.

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindAll() ([]model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("title ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Category{}, id)
	return result.RowsAffected, result.Error
}

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindByID(id uint) (*model.Brand, error)
	FindAll() ([]model.Brand, error)
	Update(brand *model.Brand) error
	Delete(id uint) (int64, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(brand *model.Brand) error {
	return r.db.Create(brand).Error
}

func (r *brandRepository) FindByID(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindAll() ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.db.Order("title ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) Update(brand *model.Brand) error {
	return r.db.Save(brand).Error
}

func (r *brandRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Brand{}, id)
	return result.RowsAffected, result.Error
}

type ColorRepository interface {
	Create(color *model.Color) error
	FindByID(id uint) (*model.Color, error)
	FindByIDs(ids []uint) ([]model.Color, error)
	FindAll() ([]model.Color, error)
	Update(color *model.Color) error
	Delete(id uint) (int64, error)
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(color *model.Color) error {
	return r.db.Create(color).Error
}

func (r *colorRepository) FindByID(id uint) (*model.Color, error) {
	var color model.Color
	if err := r.db.First(&color, id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) FindByIDs(ids []uint) ([]model.Color, error) {
	var colors []model.Color
	if err := r.db.Where("id IN ?", ids).Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *colorRepository) FindAll() ([]model.Color, error) {
	var colors []model.Color
	if err := r.db.Order("name ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *colorRepository) Update(color *model.Color) error {
	return r.db.Save(color).Error
}

func (r *colorRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Color{}, id)
	return result.RowsAffected, result.Error
}
