package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"segura-mente/internal/account/handler"
	"segura-mente/internal/account/repository"
	"segura-mente/internal/account/service"
	"segura-mente/internal/config"
	"segura-mente/internal/database"
	"segura-mente/internal/logger"
	"segura-mente/internal/mail"
	"segura-mente/internal/middleware"
)

// SetupRoutes wires the middleware chain, the account workflow and the HTTP
// surface. The store handle and mailer are injected rather than constructed
// by the packages that use them.
func SetupRoutes(cfg *config.Config, db *database.Database, mailer mail.Mailer) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	accountRepository := repository.NewAccountRepository(db)
	accountService := service.NewService(accountRepository, mailer, cfg)
	authHandler := handler.NewAuthHandler(accountService, cfg)
	adminHandler := handler.NewAdminHandler(accountService, cfg)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
