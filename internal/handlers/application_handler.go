package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/services"
	"chamba_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	applications := api.Group("/applications", middleware.AuthMiddleware())
	applications.POST("", h.Create)
	applications.GET("", h.ListMine)
	applications.GET("/:id", h.Get)
	applications.PUT("/:id", h.Update)
	applications.DELETE("/:id", h.Delete)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "application": application})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
