package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/services"
	"chamba_backend/internal/services/dto"
	"chamba_backend/pkg/apperrors"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService *services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	categories.GET("", middleware.OptionalAuthMiddleware(), h.List)

	authed := categories.Group("", middleware.AuthMiddleware())
	authed.POST("", h.Suggest)
	authed.PUT("", h.Edit)
	authed.DELETE("", h.Cancel)
}

// List returns approved categories with their skills; signed-in
// callers also get their own pending suggestions.
func (h *CategoryHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	resp, err := h.categoryService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	body := gin.H{"success": true, "categories": resp.Categories}
	if userID != "" {
		body["suggestions"] = resp.Suggestions
	}
	c.JSON(http.StatusOK, body)
}

func (h *CategoryHandler) Suggest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Propose(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.EditCategorySuggestionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Edit(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// Cancel removes the caller's pending suggestion. Already-resolved or
// missing suggestions are a silent no-op.
func (h *CategoryHandler) Cancel(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("id query parameter is required"))
		return
	}

	if err := h.categoryService.Cancel(c.Request.Context(), userID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
