// Package routes defines HTTP routes for the todo API.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elisoft-engineer/todo-api/internal/config"
	"github.com/elisoft-engineer/todo-api/internal/handlers"
	"github.com/elisoft-engineer/todo-api/internal/middleware"
	"github.com/elisoft-engineer/todo-api/internal/repository"
	"github.com/elisoft-engineer/todo-api/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	jwtService service.JWTService,
	userRepo repository.UserRepository,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.Auth(jwtService, userRepo)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/verify", authHandler.Verify)
		}

		users := v1.Group("/users")
		{
			// Registration is the only open endpoint in the group.
			users.POST("", userHandler.Register)
			users.GET("", authRequired, userHandler.List)
			users.POST("/change-password", authRequired, userHandler.ChangePassword)
			users.GET("/:id", authRequired, userHandler.Retrieve)
			users.PUT("/:id", authRequired, userHandler.Update)
			users.PATCH("/:id", authRequired, userHandler.ToggleActive)
			users.DELETE("/:id", authRequired, userHandler.Delete)
		}

		tasks := v1.Group("/tasks", authRequired)
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Retrieve)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.PATCH("/:id", taskHandler.Transition)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}
}
