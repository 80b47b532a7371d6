package auth

import (
	"errors"
	"time"

	"github.com/fekuna/go-shop/config"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens (HS256).
type TokenManager struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:        []byte(cfg.SecretKey),
		refreshSecret: []byte(cfg.RefreshSecretKey),
		accessTTL:     time.Duration(cfg.AccessTTL) * time.Second,
		refreshTTL:    time.Duration(cfg.RefreshTTL) * time.Second,
	}
}

func (tm *TokenManager) SignAccess(user *model.User) (string, error) {
	return tm.sign(user, tm.secret, tm.accessTTL)
}

func (tm *TokenManager) SignRefresh(user *model.User) (string, error) {
	return tm.sign(user, tm.refreshSecret, tm.refreshTTL)
}

func (tm *TokenManager) sign(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (tm *TokenManager) ParseAccess(token string) (*Claims, error) {
	return tm.parse(token, tm.secret)
}

func (tm *TokenManager) ParseRefresh(token string) (*Claims, error) {
	return tm.parse(token, tm.refreshSecret)
}

func (tm *TokenManager) parse(token string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
