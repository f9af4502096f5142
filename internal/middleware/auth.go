// Package middleware provides HTTP middleware for the todo API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elisoft-engineer/todo-api/internal/models"
	"github.com/elisoft-engineer/todo-api/internal/repository"
	"github.com/elisoft-engineer/todo-api/internal/service"
)

// principalKey is the gin context key holding the authenticated user.
const principalKey = "principal"

// Auth returns middleware that validates the bearer token and attaches
// the authenticated user to the request context. The user row is
// re-read on every request so staff and active flags are current;
// deactivated accounts are rejected outright.
func Auth(jwtService service.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided",
			})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid or expired token",
			})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid or expired token",
			})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser attaches a principal to the context. Auth uses it
// internally; tests use it to simulate an authenticated request.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(principalKey, user)
}

// CurrentUser returns the authenticated user attached by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
