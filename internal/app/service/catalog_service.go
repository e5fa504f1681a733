package service

import (
	"errors"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrColorNotFound    = errors.New("color not found")
)

// CatalogService manages the flat taxonomy entities: categories, brands
// and colors.
type CatalogService interface {
	CreateCategory(title, icon string) (*model.Category, error)
	GetCategories() ([]model.Category, error)
	GetCategoryByID(id uint) (*model.Category, error)
	UpdateCategory(id uint, title, icon *string) (*model.Category, error)
	DeleteCategory(id uint) error

	CreateBrand(title string) (*model.Brand, error)
	GetBrands() ([]model.Brand, error)
	GetBrandByID(id uint) (*model.Brand, error)
	UpdateBrand(id uint, title string) (*model.Brand, error)
	DeleteBrand(id uint) error

	CreateColor(name, code string) (*model.Color, error)
	GetColors() ([]model.Color, error)
	GetColorByID(id uint) (*model.Color, error)
	UpdateColor(id uint, name, code *string) (*model.Color, error)
	DeleteColor(id uint) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	colorRepo    repository.ColorRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	colorRepo repository.ColorRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		colorRepo:    colorRepo,
	}
}

func (s *catalogService) CreateCategory(title, icon string) (*model.Category, error) {
	category := &model.Category{Title: title, Icon: icon}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"title":       title,
	})
	return category, nil
}

func (s *catalogService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategoryByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uint, title, icon *string) (*model.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		category.Title = *title
	}
	if icon != nil {
		category.Icon = *icon
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	affected, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) CreateBrand(title string) (*model.Brand, error) {
	brand := &model.Brand{Title: title}
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}

	logger.Info("Brand created", map[string]interface{}{
		"brand_id": brand.ID,
		"title":    title,
	})
	return brand, nil
}

func (s *catalogService) GetBrands() ([]model.Brand, error) {
	return s.brandRepo.FindAll()
}

func (s *catalogService) GetBrandByID(id uint) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) UpdateBrand(id uint, title string) (*model.Brand, error) {
	brand, err := s.GetBrandByID(id)
	if err != nil {
		return nil, err
	}

	brand.Title = title
	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) DeleteBrand(id uint) error {
	affected, err := s.brandRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (s *catalogService) CreateColor(name, code string) (*model.Color, error) {
	color := &model.Color{Name: name, Code: code}
	if err := s.colorRepo.Create(color); err != nil {
		return nil, err
	}

	logger.Info("Color created", map[string]interface{}{
		"color_id": color.ID,
		"name":     name,
	})
	return color, nil
}

func (s *catalogService) GetColors() ([]model.Color, error) {
	return s.colorRepo.FindAll()
}

func (s *catalogService) GetColorByID(id uint) (*model.Color, error) {
	color, err := s.colorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, err
	}
	return color, nil
}

func (s *catalogService) UpdateColor(id uint, name, code *string) (*model.Color, error) {
	color, err := s.GetColorByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		color.Name = *name
	}
	if code != nil {
		color.Code = *code
	}
	if err := s.colorRepo.Update(color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *catalogService) DeleteColor(id uint) error {
	affected, err := s.colorRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrColorNotFound
	}
	return nil
}
