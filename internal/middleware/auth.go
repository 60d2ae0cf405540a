package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/auth"
	"chamba_backend/internal/logger"
	"chamba_backend/pkg/apperrors"
)

// Keys under which the authenticated session is stored on the gin
// context.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserRoleKey  = "userRole"
)

// AuthMiddleware requires a valid Bearer token and stores its claims
// on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("missing or invalid session token"))
			c.Abort()
			return
		}
		setSession(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware stores the claims when a valid token is
// present and lets anonymous requests through untouched.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c); ok {
			setSession(c, claims)
		}
		c.Next()
	}
}

// RequireRoles allows only sessions whose role is in the list. Must
// run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

func bearerClaims(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	claims, err := auth.ParseToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setSession(c *gin.Context, claims *auth.Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(UserEmailKey, claims.Email)
	c.Set(UserRoleKey, claims.Role)
	if claims.UserID != "" {
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
	}
}
