package service

import (
	"errors"
	"strings"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminUpdateUserInput struct {
	FirstName *string         `json:"firstname"`
	LastName  *string         `json:"lastname"`
	Mobile    *string         `json:"mobile"`
	Role      *model.UserRole `json:"role"`
}

// UserService covers the admin-side account operations.
type UserService interface {
	GetAllUsers(sortBy string) ([]model.User, error)
	GetUserByID(id uint) (*model.User, error)
	SearchByEmail(prefix string) ([]model.User, error)
	UpdateUser(id uint, input AdminUpdateUserInput) (*model.User, error)
	DeleteUser(id uint) error
	BlockUser(id uint) error
	UnblockUser(id uint) error
	CountUsers() (int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(sortBy string) ([]model.User, error) {
	return s.userRepo.FindAll(sortBy)
}

func (s *userService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SearchByEmail(prefix string) ([]model.User, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return []model.User{}, nil
	}
	return s.userRepo.SearchByEmailPrefix(prefix)
}

func (s *userService) UpdateUser(id uint, input AdminUpdateUserInput) (*model.User, error) {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.FirstName != nil {
		fields["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["last_name"] = *input.LastName
	}
	if input.Mobile != nil {
		fields["mobile"] = *input.Mobile
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	logger.Info("User updated by admin", map[string]interface{}{
		"user_id": id,
		"fields":  len(fields),
	})
	return s.userRepo.FindByID(id)
}

func (s *userService) DeleteUser(id uint) error {
	affected, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	logger.Info("User deleted", map[string]interface{}{
		"user_id": id,
	})
	return nil
}

func (s *userService) BlockUser(id uint) error {
	return s.setBlocked(id, true)
}

func (s *userService) UnblockUser(id uint) error {
	return s.setBlocked(id, false)
}

func (s *userService) setBlocked(id uint, blocked bool) error {
	affected, err := s.userRepo.SetBlocked(id, blocked)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	logger.Info("User blocked flag changed", map[string]interface{}{
		"user_id": id,
		"blocked": blocked,
	})
	return nil
}

func (s *userService) CountUsers() (int64, error) {
	return s.userRepo.Count()
}
