// Package app wires configuration, storage, services and routes into a
// running HTTP server.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"chamba_backend/database"
	"chamba_backend/internal/config"
	"chamba_backend/internal/currency"
	"chamba_backend/internal/email"
	"chamba_backend/internal/handlers"
	"chamba_backend/internal/logger"
	"chamba_backend/internal/middleware"
	"chamba_backend/internal/routes"
	"chamba_backend/internal/services"
)

func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Seed(db, cfg.AdminEmails); err != nil {
		return err
	}
	if err := database.LinkLegacySuggestions(db); err != nil {
		return err
	}

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPProvider(cfg.Email)
	} else {
		logger.Warn("SMTP not configured, email notifications go to the mock provider")
		mailer = email.NewMockProvider()
	}

	svc := services.NewServiceContainer(db, mailer)
	rates := currency.NewCache(cfg.Exchange)

	router := SetupRouter(cfg.Server.Env)
	routes.Register(router, handlers.NewAppHandlers(svc, rates))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with the shared middleware chain.
func SetupRouter(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return router
}
