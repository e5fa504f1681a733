package repository

import (
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserSortFields is the allow-list for the admin user listing sort param.
var UserSortFields = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"mobile":     true,
	"created_at": true,
	"is_blocked": true,
}

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll(sortBy string) ([]model.User, error)
	SearchByEmailPrefix(prefix string) ([]model.User, error)
	Update(user *model.User) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) (int64, error)
	SetBlocked(id uint, blocked bool) (int64, error)
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(sortBy string) ([]model.User, error) {
	order := "created_at DESC"
	if UserSortFields[sortBy] {
		order = sortBy + " ASC"
	}

	var users []model.User
	if err := r.db.Order(order).Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err, map[string]interface{}{
			"sort_by": sortBy,
		})
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SearchByEmailPrefix(prefix string) ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("email LIKE ?", prefix+"%").Find(&users).Error; err != nil {
		logger.Error("Failed to search users by email prefix", err, map[string]interface{}{
			"prefix": prefix,
		})
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

func (r *userRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		logger.Error("Failed to update user fields in database", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}
	return nil
}

func (r *userRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.User{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete user from database", result.Error, map[string]interface{}{
			"user_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *userRepository) SetBlocked(id uint, blocked bool) (int64, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Update("is_blocked", blocked)
	if result.Error != nil {
		logger.Error("Failed to update user blocked flag", result.Error, map[string]interface{}{
			"user_id": id,
			"blocked": blocked,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
