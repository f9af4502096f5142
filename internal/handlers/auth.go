package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elisoft-engineer/todo-api/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// VerifyRequest represents the token verification request payload.
type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyResponse represents the token verification response.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

// Login godoc
// @Summary Obtain token pair
// @Description Authenticate with email and password and return access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInactiveAccount) {
			RespondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Revoke refresh token
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		RespondError(c, http.StatusUnauthorized, "Authentication credentials were not provided")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Logged out successfully"})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Rotate the token pair using a valid refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrInactiveAccount) {
			RespondError(c, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "token refresh failed")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Verify godoc
// @Summary Verify access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Access token"
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} VerifyResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, err := h.authService.VerifyToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, VerifyResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{Valid: true, Email: claims.Email})
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	return ""
}
