package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/models"
	"chamba_backend/internal/services"
	"chamba_backend/internal/services/dto"
)

type ProjectHandler struct {
	*BaseHandler
	projectService     *services.ProjectService
	applicationService *services.ApplicationService
}

func NewProjectHandler(base *BaseHandler, projectService *services.ProjectService, applicationService *services.ApplicationService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:        base,
		projectService:     projectService,
		applicationService: applicationService,
	}
}

func (h *ProjectHandler) RegisterRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	projects.GET("", h.List)
	projects.GET("/:id", h.Get)

	authed := projects.Group("", middleware.AuthMiddleware())
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.PATCH("/:id", h.UpdateStatus)
	authed.DELETE("/:id", h.Delete)
	authed.GET("/:id/applications", h.ListApplications)
}

func (h *ProjectHandler) List(c *gin.Context) {
	var req dto.ProjectSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.projectService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"projects":     resp.Projects,
		"count":        resp.Count,
		"total_count":  resp.TotalCount,
		"total_pages":  resp.TotalPages,
		"current_page": resp.CurrentPage,
	})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), userID, c.Param("id"), models.ProjectStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListApplications returns a project's applications to its owner.
func (h *ProjectHandler) ListApplications(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForProject(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}
