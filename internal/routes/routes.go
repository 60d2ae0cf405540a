// Package routes mounts every handler under the versioned API group.
package routes

import (
	"github.com/gin-gonic/gin"

	"chamba_backend/internal/handlers"
)

func Register(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api/v1")

	h.Misc.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api)
	h.Project.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.Category.RegisterRoutes(api)
	h.Admin.RegisterRoutes(api)
}
