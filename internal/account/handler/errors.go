package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"segura-mente/internal/config"
	"segura-mente/internal/logger"
	"segura-mente/internal/middleware"
	appErrors "segura-mente/pkg/errors"
	"segura-mente/pkg/utils"
)

// respondWithError is the single mapping from workflow errors to HTTP
// responses. Anything unrecognized becomes a 500 whose detail is exposed only
// in development mode.
func respondWithError(c *gin.Context, cfg *config.Config, err error) {
	if err == nil {
		return
	}

	var validationErr *appErrors.ValidationError
	if errors.As(err, &validationErr) {
		utils.ValidationErrorResponse(c, http.StatusBadRequest, validationErr.Errors)
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrEmailTaken),
		errors.Is(err, appErrors.ErrUsernameTaken),
		errors.Is(err, appErrors.ErrIdentificationTaken),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrAlreadyVerified),
		errors.Is(err, appErrors.ErrWeakPassword):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrEmailNotVerified):
		utils.ErrorResponseWith(c, http.StatusForbidden, err.Error(), gin.H{
			"emailNotVerified": true,
		})
	case errors.Is(err, appErrors.ErrAccountNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)

		if cfg.IsDevelopment() {
			c.JSON(http.StatusInternalServerError, utils.Response{
				Success: false,
				Message: "Internal server error",
				Error:   err.Error(),
			})
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
