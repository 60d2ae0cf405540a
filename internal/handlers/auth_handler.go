package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/services"
	"chamba_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/callback", h.Callback)
	auth.GET("/me", middleware.AuthMiddleware(), h.Me)
}

// Callback handles the trusted post-OAuth handoff: it upserts the user
// and returns a session token.
func (h *AuthHandler) Callback(c *gin.Context) {
	var req dto.OAuthCallbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.HandleOAuthCallback(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	email := c.GetString(middleware.UserEmailKey)

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID, email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
