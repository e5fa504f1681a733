package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"github.com/dukastore/dukastore-backend/pkg/util"
	"gorm.io/gorm"

	"github.com/dukastore/dukastore-backend/internal/app/model"
)

var ErrResetTokenInvalid = errors.New("reset token is invalid or expired")

// ResetTokenTTL is how long a password reset link stays valid.
const ResetTokenTTL = 30 * time.Minute

type PasswordResetService interface {
	ForgotPassword(email, resetBaseURL string) error
	ResetPassword(token, newPassword string) error
}

type passwordResetService struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	mailer    *util.Mailer
}

func NewPasswordResetService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	mailer *util.Mailer,
) PasswordResetService {
	return &passwordResetService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
	}
}

// ForgotPassword issues a reset token and mails it. An unknown email
// returns nil as well, so the endpoint does not reveal which addresses
// are registered.
func (s *passwordResetService) ForgotPassword(email, resetBaseURL string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("Password reset requested for unknown email", map[string]interface{}{
				"email": email,
			})
			return nil
		}
		return err
	}

	token, err := util.GenerateResetToken()
	if err != nil {
		logger.Error("Failed to generate reset token", err)
		return err
	}

	if err := s.resetRepo.InvalidateForEmail(user.Email); err != nil {
		return err
	}

	reset := &model.PasswordReset{
		Email:     user.Email,
		TokenHash: util.HashResetToken(token),
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		logger.Error("Failed to store reset token", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(resetBaseURL, "/"), token)
	html := fmt.Sprintf(
		`Hi %s,<br/>Follow this link to reset your password. It is valid for %d minutes.<br/><a href="%s">Reset password</a>`,
		user.FirstName, int(ResetTokenTTL.Minutes()), link,
	)

	if err := s.mailer.Send(util.Mail{
		To:      user.Email,
		Subject: "Password reset",
		HTML:    html,
	}); err != nil {
		return err
	}

	logger.Info("Password reset token issued", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

// ResetPassword consumes a reset token and sets the new password. The
// token is single-use: it is marked used before the password changes.
func (s *passwordResetService) ResetPassword(token, newPassword string) error {
	reset, err := s.resetRepo.FindValidByTokenHash(util.HashResetToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Password reset with invalid or expired token", nil)
			return ErrResetTokenInvalid
		}
		return err
	}

	user, err := s.userRepo.FindByEmail(reset.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err)
		return err
	}

	if err := s.resetRepo.MarkUsed(reset.ID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{"password_hash": hash}); err != nil {
		return err
	}

	logger.Info("Password reset completed", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}
