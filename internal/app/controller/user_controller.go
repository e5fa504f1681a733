package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dukastore/dukastore-backend/internal/app/service"
	apperrors "github.com/dukastore/dukastore-backend/internal/errors"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController exposes the admin-only account management endpoints.
type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetAllUsers lists every account, optionally sorted
// GET /api/v1/users?sort=email
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	users, err := ctrl.userService.GetAllUsers(c.Query("sort"))
	if err != nil {
		log.Error("Failed to list users", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// SearchUsers finds accounts whose email starts with the given prefix
// GET /api/v1/users/search?email=jo
func (ctrl *UserController) SearchUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	prefix := c.Query("email")
	if prefix == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Query parameter 'email' is required")
		return
	}

	users, err := ctrl.userService.SearchByEmail(prefix)
	if err != nil {
		log.Error("Failed to search users", err, map[string]interface{}{
			"prefix": prefix,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// CountUsers returns the total number of accounts
// GET /api/v1/users/count
func (ctrl *UserController) CountUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	count, err := ctrl.userService.CountUsers()
	if err != nil {
		log.Error("Failed to count users", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "count users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": count,
	})
}

// GetUser returns one account
// GET /api/v1/users/:id
func (ctrl *UserController) GetUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": userPayload(user),
	})
}

// UpdateUser applies a partial update to an account
// PUT /api/v1/users/:id
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AdminUpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid user data")
		return
	}

	user, err := ctrl.userService.UpdateUser(id, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to update user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    userPayload(user),
	})
}

// DeleteUser removes an account
// DELETE /api/v1/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.DeleteUser(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// BlockUser blocks an account from logging in
// PUT /api/v1/users/:id/block
func (ctrl *UserController) BlockUser(c *gin.Context) {
	ctrl.setBlocked(c, true)
}

// UnblockUser lifts a block
// PUT /api/v1/users/:id/unblock
func (ctrl *UserController) UnblockUser(c *gin.Context) {
	ctrl.setBlocked(c, false)
}

func (ctrl *UserController) setBlocked(c *gin.Context, blocked bool) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var err error
	if blocked {
		err = ctrl.userService.BlockUser(id)
	} else {
		err = ctrl.userService.UnblockUser(id)
	}
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to change user blocked flag", err, map[string]interface{}{
			"user_id": id,
			"blocked": blocked,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update user")
		return
	}

	message := "User unblocked successfully"
	if blocked {
		message = "User blocked successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
