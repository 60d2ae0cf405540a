package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/currency"
)

// MiscHandler serves the health check and the exchange-rate endpoint.
type MiscHandler struct {
	rates *currency.Cache
}

func NewMiscHandler(rates *currency.Cache) *MiscHandler {
	return &MiscHandler{rates: rates}
}

func (h *MiscHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.Health)
	api.GET("/exchange-rate", h.ExchangeRate)
}

func (h *MiscHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

func (h *MiscHandler) ExchangeRate(c *gin.Context) {
	rate := h.rates.Rate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "rate": rate})
}
