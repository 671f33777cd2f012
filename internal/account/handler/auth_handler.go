package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"segura-mente/internal/account/model"
	"segura-mente/internal/account/service"
	"segura-mente/internal/config"
	"segura-mente/pkg/utils"
)

// AuthHandler serves the unauthenticated account-lifecycle endpoints.
type AuthHandler struct {
	service *service.AccountService
	config  *config.Config
}

func NewAuthHandler(svc *service.AccountService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: svc, config: cfg}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.GET("/verify", h.VerifyEmail)
		auth.POST("/resend-verification", h.ResendVerification)
		auth.POST("/login", h.Login)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request model.RegisterRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.Username = utils.SanitizeString(request.Username)
	request.Address = utils.SanitizeString(request.Address)

	registered, err := h.service.Register(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated,
		"Account registered successfully. Please verify your email address.", registered)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Verification token not provided")
		return
	}

	result, err := h.service.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	if result.AlreadyVerified {
		utils.SuccessResponseWith(c, http.StatusOK, "This account has already been verified", gin.H{
			"alreadyVerified": true,
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verified successfully. You can now log in.",
		model.RegisteredResponse{Email: result.Email, Username: result.Username})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var request model.ResendVerificationRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	if err := h.service.ResendVerification(c.Request.Context(), &request); err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Verification email sent successfully", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request model.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	result, err := h.service.Login(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponseWith(c, http.StatusOK, "Login successful", gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var request model.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	if err := h.service.ForgotPassword(c.Request.Context(), &request); err != nil {
		respondWithError(c, h.config, err)
		return
	}

	// Same message whether or not the account exists.
	utils.SuccessResponse(c, http.StatusOK,
		"If the email exists in our system, you will receive password recovery instructions.", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var request model.ResetPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &request); err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"Password updated successfully. You can now log in with your new password.", nil)
}
