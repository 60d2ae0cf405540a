package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chamba_backend/internal/middleware"
	"chamba_backend/internal/validator"
	"chamba_backend/pkg/apperrors"
)

// BaseHandler carries the bind/validate/error plumbing shared by every
// handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// BindAndValidateJSON binds the JSON body into obj and validates it.
// On failure it writes the 400 response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateQuery binds the query string into obj and validates
// it. On failure it writes the 400 response and returns false.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders a service error as the JSON envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// CurrentUserID returns the authenticated user's id. A session whose
// sign-in upsert never landed carries an email but no id; that is a
// missing user row, not a missing session, so it gets a 404. Without
// any session at all the response is 401.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID != "" {
		return userID, true
	}
	if c.GetString(middleware.UserEmailKey) != "" {
		apperrors.HandleError(c, apperrors.ErrUserNotFound)
	} else {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
	}
	return "", false
}
