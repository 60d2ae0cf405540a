package main

import (
	"chamba_backend/internal/app"
	"chamba_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
