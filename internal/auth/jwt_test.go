package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamba_backend/internal/config"
	"chamba_backend/internal/models"
)

func init() {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TTL: 60},
	}
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "11111111-1111-1111-1111-111111111111"},
		Email:     "dev@chamba.co",
		Role:      models.UserRoleAdmin,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", claims.UserID)
	assert.Equal(t, "dev@chamba.co", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "rotated"
	defer func() { config.AppConfig.JWT.Secret = "test-secret" }()

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
