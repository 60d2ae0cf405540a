package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := InternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeInternalError, appErr.Code)
}

func TestPredefinedErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrProjectNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrProjectNotOpen.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrApplicationExists.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrInsufficientPermissions.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrCategorySlugTakenFor("Plomería").HTTPCode)
}

func TestHandleErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("app errors keep their code and status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleError(c, ErrProjectNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, string(CodeNotFound), body.Error.Code)
		assert.NotEmpty(t, body.Error.Message)
	})

	t.Run("plain errors become 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleError(c, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
