package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"segura-mente/internal/account/model"
	"segura-mente/internal/account/service"
	"segura-mente/internal/config"
	"segura-mente/pkg/utils"
)

// AdminHandler serves the token-gated user-management endpoints.
type AdminHandler struct {
	service *service.AccountService
	config  *config.Config
}

func NewAdminHandler(svc *service.AccountService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{service: svc, config: cfg}
}

// RegisterRoutes mounts the management surface. The caller is expected to
// wrap the group with the authorization middleware.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:email", h.Get)
		users.POST("", h.Create)
		users.PUT("/:email", h.Update)
		users.DELETE("/:email", h.Delete)
	}
}

func (h *AdminHandler) List(c *gin.Context) {
	accounts, err := h.service.AdminList(c.Request.Context())
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponseWith(c, http.StatusOK, "Accounts retrieved successfully", gin.H{
		"count": len(accounts),
		"users": accounts,
	})
}

func (h *AdminHandler) Get(c *gin.Context) {
	email := utils.SanitizeEmail(c.Param("email"))

	account, err := h.service.AdminGet(c.Request.Context(), email)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponseWith(c, http.StatusOK, "Account retrieved successfully", gin.H{
		"user": account,
	})
}

func (h *AdminHandler) Create(c *gin.Context) {
	var request model.AdminCreateRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.Username = utils.SanitizeString(request.Username)
	request.Address = utils.SanitizeString(request.Address)

	created, err := h.service.AdminCreate(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponseWith(c, http.StatusCreated, "Account created successfully", gin.H{
		"user": created,
	})
}

func (h *AdminHandler) Update(c *gin.Context) {
	email := utils.SanitizeEmail(c.Param("email"))

	var request model.AdminUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.AdminUpdate(c.Request.Context(), email, &request)
	if err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponseWith(c, http.StatusOK, "Account updated successfully", gin.H{
		"user": updated,
	})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	email := utils.SanitizeEmail(c.Param("email"))

	if err := h.service.AdminDelete(c.Request.Context(), email); err != nil {
		respondWithError(c, h.config, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account deleted successfully", nil)
}
