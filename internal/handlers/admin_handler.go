package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/models"
	"chamba_backend/internal/services"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

// AdminHandler serves the moderation panel: category review and the
// user listing.
type AdminHandler struct {
	*BaseHandler
	categoryService *services.CategoryService
	userService     *services.UserService
}

func NewAdminHandler(base *BaseHandler, categoryService *services.CategoryService, userService *services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		categoryService: categoryService,
		userService:     userService,
	}
}

func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(string(models.UserRoleAdmin)))
	admin.GET("/categories", h.ListCategories)
	admin.PATCH("/categories", h.ResolveCategory)
	admin.DELETE("/categories", h.RejectCategory)
	admin.GET("/users", h.ListUsers)
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.AdminList(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// ResolveCategory applies an approve or reassign decision to a pending
// suggestion.
func (h *AdminHandler) ResolveCategory(c *gin.Context) {
	var req dto.ResolveCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Resolve(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// RejectCategory deletes a pending suggestion and notifies the
// suggester.
func (h *AdminHandler) RejectCategory(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("id query parameter is required"))
		return
	}

	if err := h.categoryService.Reject(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
