package service

import (
	"testing"
	"time"

	"github.com/dukastore/dukastore-backend/config"
	"github.com/dukastore/dukastore-backend/internal/app/model"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/dukastore/dukastore-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (AuthService, repository.UserRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(userRepo, &config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})
	return authService, userRepo, testDB
}

func TestAuthService_Register(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane@Example.com",
		Password:  "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email) // normalized
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	input := RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	}
	_, err := authService.Register(input)
	require.NoError(t, err)

	_, err = authService.Register(input)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	user, token, err := authService.Login("jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email)

	claims, err := util.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must yield the same error
	_, _, unknownErr := authService.Login("nobody@example.com", "password123")
	_, _, wrongPwErr := authService.Login("jane@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	authService, userRepo, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	_, err = userRepo.SetBlocked(user.ID, true)
	require.NoError(t, err)

	_, _, err = authService.Login("jane@example.com", "password123")
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	newName := "Janet"
	updated, err := authService.UpdateProfile(user.ID, UpdateProfileInput{
		FirstName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "jane@example.com", updated.Email) // untouched
}

func TestAuthService_SaveAddress(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	updated, err := authService.SaveAddress(user.ID, "42 Moi Avenue, Nairobi")
	require.NoError(t, err)
	assert.Equal(t, "42 Moi Avenue, Nairobi", updated.Address)

	_, err = authService.SaveAddress(9999, "nowhere")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
