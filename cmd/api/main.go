// Package main is the entry point for the todo API.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/elisoft-engineer/todo-api/internal/config"
	"github.com/elisoft-engineer/todo-api/internal/database"
	"github.com/elisoft-engineer/todo-api/internal/handlers"
	"github.com/elisoft-engineer/todo-api/internal/repository"
	"github.com/elisoft-engineer/todo-api/internal/routes"
	"github.com/elisoft-engineer/todo-api/internal/service"
	"github.com/elisoft-engineer/todo-api/pkg/redis"
)

// @title Todo API
// @version 1.0
// @description User accounts with JWT authentication and per-user task lists
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient := redis.NewClient(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	if jwtService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, cfg, jwtService, userRepo, authHandler, userHandler, taskHandler, healthHandler)

	// Start server
	log.Printf("Starting todo API on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
