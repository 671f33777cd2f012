package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"segura-mente/internal/config"
	"segura-mente/pkg/utils"
)

// Context keys for the identity claims attached by AuthMiddleware.
const (
	ContextEmailKey    = "email"
	ContextUsernameKey = "username"
)

// AuthMiddleware gates the user-management endpoints. A missing bearer token
// yields 401; a present but invalid or expired token yields 403. The failure
// reason (signature, structure, expiry) is never disclosed.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication token not provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication token not provided")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextUsernameKey, claims.Username)

		c.Next()
	}
}
