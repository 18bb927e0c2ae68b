package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(JWTConfig{
		Secret:         "access-secret",
		RefreshSecret:  "refresh-secret",
		Issuer:         "admin-api",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	})

	token, err := manager.GenerateAccessToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "admin-api", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(JWTConfig{
		Secret:         "access-secret",
		RefreshSecret:  "refresh-secret",
		Issuer:         "admin-api",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	})

	token, err := manager.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	manager := NewTokenManager(JWTConfig{
		Secret:         "access-secret",
		RefreshSecret:  "refresh-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	})

	refresh, err := manager.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager(JWTConfig{Secret: "secret-a", AccessTTLMin: 15})
	verifier := NewTokenManager(JWTConfig{Secret: "secret-b", AccessTTLMin: 15})

	token, err := issuer.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	manager := NewTokenManager(JWTConfig{Secret: "access-secret", AccessTTLMin: -1})

	token, err := manager.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshFallsBackToAccessSecret(t *testing.T) {
	manager := NewTokenManager(JWTConfig{Secret: "only-secret", AccessTTLMin: 15, RefreshTTLDays: 7})

	token, err := manager.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}
