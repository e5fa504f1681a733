package repository

import (
	"time"

	"github.com/dukastore/dukastore-backend/internal/app/model"
	"gorm.io/gorm"
)

type PasswordResetRepository interface {
	Create(reset *model.PasswordReset) error
	FindValidByTokenHash(tokenHash string) (*model.PasswordReset, error)
	MarkUsed(id uint) error
	InvalidateForEmail(email string) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(reset *model.PasswordReset) error {
	return r.db.Create(reset).Error
}

// FindValidByTokenHash returns the reset row for the hash only while it is
// unused and unexpired.
func (r *passwordResetRepository) FindValidByTokenHash(tokenHash string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	err := r.db.
		Where("token_hash = ? AND used = ? AND expires_at > ?", tokenHash, false, time.Now()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) MarkUsed(id uint) error {
	return r.db.Model(&model.PasswordReset{}).
		Where("id = ?", id).
		Update("used", true).Error
}

// InvalidateForEmail voids any outstanding reset tokens before a new one is
// issued.
func (r *passwordResetRepository) InvalidateForEmail(email string) error {
	return r.db.Model(&model.PasswordReset{}).
		Where("email = ? AND used = ?", email, false).
		Update("used", true).Error
}
