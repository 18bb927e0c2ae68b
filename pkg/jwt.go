package utils

import (
	"errors"
	"time"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTConfig struct {
	Secret         string
	RefreshSecret  string
	Issuer         string
	AccessTTLMin   int
	RefreshTTLDays int
}

// TokenManager issues and validates HS256 access/refresh token pairs. It is
// constructed once in main and injected; there is no ambient secret state.
type TokenManager struct {
	cfg JWTConfig
}

func NewTokenManager(cfg JWTConfig) *TokenManager {
	return &TokenManager{cfg: cfg}
}

func (m *TokenManager) GenerateAccessToken(userID string) (string, error) {
	claims := &entity.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(m.cfg.AccessTTLMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    m.cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.cfg.Secret))
}

func (m *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	claims := &entity.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(m.cfg.RefreshTTLDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    m.cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.refreshSecret()))
}

func (m *TokenManager) ValidateAccessToken(tokenString string) (*entity.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &entity.AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*entity.AccessClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

func (m *TokenManager) ValidateRefreshToken(tokenString string) (*entity.RefreshClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &entity.RefreshClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.refreshSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*entity.RefreshClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid refresh token")
	}
	return claims, nil
}

func (m *TokenManager) refreshSecret() string {
	if m.cfg.RefreshSecret != "" {
		return m.cfg.RefreshSecret
	}
	return m.cfg.Secret
}
