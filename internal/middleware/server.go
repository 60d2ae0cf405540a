package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chamba_backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id, honoring one sent
// by the client.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// LoggingMiddleware logs each request with severity picked from the
// response status.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		log := logger.FromContext(c.Request.Context()).With(
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start).String(),
			"size", c.Writer.Size(),
		)
		switch {
		case status >= 500:
			log.Error("request")
		case status >= 400:
			log.Warn("request")
		default:
			log.Info("request")
		}
	}
}

// CORSMiddleware allows browser clients from any origin with the
// session header.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
