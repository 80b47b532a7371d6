package auth

import (
	"testing"

	"github.com/fekuna/go-shop/config"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		SecretKey:        "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTTL:        3600,
		RefreshTTL:       604800,
	})
}

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Email:     "alice@example.com",
		Role:      model.RoleUser,
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	tm := newTestTokenManager()
	u := testUser()

	token, err := tm.SignAccess(u)
	require.NoError(t, err)

	claims, err := tm.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	tm := newTestTokenManager()
	u := testUser()

	token, err := tm.SignRefresh(u)
	require.NoError(t, err)

	claims, err := tm.ParseRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestAccessAndRefreshSecretsAreDistinct(t *testing.T) {
	tm := newTestTokenManager()
	u := testUser()

	access, err := tm.SignAccess(u)
	require.NoError(t, err)
	refresh, err := tm.SignRefresh(u)
	require.NoError(t, err)

	_, err = tm.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForgedToken(t *testing.T) {
	tm := newTestTokenManager()
	forger := NewTokenManager(&config.JWTConfig{
		SecretKey:        "someone-elses-secret",
		RefreshSecretKey: "someone-elses-refresh",
		AccessTTL:        3600,
		RefreshTTL:       604800,
	})

	token, err := forger.SignAccess(testUser())
	require.NoError(t, err)

	_, err = tm.ParseAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ParseAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(&config.JWTConfig{
		SecretKey:        "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTTL:        -60,
		RefreshTTL:       604800,
	})

	token, err := tm.SignAccess(testUser())
	require.NoError(t, err)

	_, err = tm.ParseAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
