package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elisoft-engineer/todo-api/internal/middleware"
	"github.com/elisoft-engineer/todo-api/internal/models"
	"github.com/elisoft-engineer/todo-api/internal/permissions"
	"github.com/elisoft-engineer/todo-api/internal/service"
)

// UserHandler handles user HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// UserUpdateRequest represents the profile update payload.
type UserUpdateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// PasswordChangeRequest represents the password change payload.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// List godoc
// @Summary List users
// @Description List all users, optionally filtered by active status. Staff only.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param active query string false "Filter users by their active status (true/false)"
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)
	if !permissions.StaffOnly(principal) {
		RespondError(c, http.StatusForbidden, "You do not have permission to perform this action")
		return
	}

	var active *bool
	if value := c.Query("active"); value != "" {
		flag := isTruthy(value)
		active = &flag
	}

	users, err := h.userService.List(c.Request.Context(), active)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// Register godoc
// @Summary Register a user
// @Description Create a new account. Open to unauthenticated callers.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account fields"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			RespondError(c, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Retrieve godoc
// @Summary Retrieve a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) Retrieve(c *gin.Context) {
	user, ok := h.selfOrStaffTarget(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update a user
// @Description Update email and names. Email uniqueness is revalidated excluding the user's own record.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UserUpdateRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.selfOrStaffTarget(c)
	if !ok {
		return
	}

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Update(c.Request.Context(), user, req.Email, req.FirstName, req.LastName); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			RespondError(c, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleActive godoc
// @Summary Activate or deactivate a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [patch]
func (h *UserHandler) ToggleActive(c *gin.Context) {
	user, ok := h.selfOrStaffTarget(c)
	if !ok {
		return
	}

	active, err := h.userService.ToggleActive(c.Request.Context(), user)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update user")
		return
	}

	message := "User account has been deactivated"
	if active {
		message = "User account has been activated"
	}
	c.JSON(http.StatusOK, gin.H{"detail": message})
}

// Delete godoc
// @Summary Delete a user
// @Description Delete an account and all of its tasks. Staff only.
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)
	if !permissions.StaffOnly(principal) {
		RespondError(c, http.StatusForbidden, "You do not have permission to perform this action")
		return
	}

	user, ok := h.targetUser(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), user); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete user")
		return
	}

	c.JSON(http.StatusNoContent, gin.H{"detail": "User deleted successfully"})
}

// ChangePassword godoc
// @Summary Change own password
// @Description Replace the authenticated user's password after verifying the current one
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PasswordChangeRequest true "Old and new passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.CurrentUser(c)

	if err := h.userService.ChangePassword(c.Request.Context(), principal, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			RespondError(c, http.StatusBadRequest, "Wrong password")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to change password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Password updated successfully"})
}

// targetUser resolves the path id to a user row, mapping a missing or
// malformed id to 404.
func (h *UserHandler) targetUser(c *gin.Context) (*models.User, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "Not found")
		return nil, false
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			RespondError(c, http.StatusNotFound, "Not found")
			return nil, false
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to fetch user")
		return nil, false
	}

	return user, true
}

// selfOrStaffTarget resolves the target user and enforces the
// self-or-staff object check. Existence is checked before permissions.
func (h *UserHandler) selfOrStaffTarget(c *gin.Context) (*models.User, bool) {
	user, ok := h.targetUser(c)
	if !ok {
		return nil, false
	}

	principal, _ := middleware.CurrentUser(c)
	if !permissions.SelfOrStaff(principal, user.ID) {
		RespondError(c, http.StatusForbidden, "You do not have permission to perform this action")
		return nil, false
	}

	return user, true
}
