package jwt

import (
	"testing"
	"time"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := newTestService()
	userID := uuid.New()
	familyID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "ana@example.com", "patient", &familyID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "patient", claims.Role)
	require.NotNil(t, claims.FamilyID)
	assert.Equal(t, familyID, *claims.FamilyID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "ana@example.com", "patient", nil)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Nil(t, claims.FamilyID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateAccessToken(uuid.New(), "ana@example.com", "patient", nil)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := s.GenerateAccessToken(uuid.New(), "ana@example.com", "patient", nil)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	s := newTestService()

	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	_, first, err := s.GenerateAccessToken(userID, "ana@example.com", "patient", nil)
	require.NoError(t, err)
	_, second, err := s.GenerateAccessToken(userID, "ana@example.com", "patient", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
