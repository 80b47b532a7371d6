package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/go-shop/config"
	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/auth/dto"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAllByRole(_ context.Context, _ string) ([]model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateRefreshToken(_ context.Context, userID string, token *string) error {
	if u, ok := r.users[userID]; ok {
		u.RefreshToken = token
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newAuthFixture() (*fakeUserRepo, auth.UseCase) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	tokens := auth.NewTokenManager(&config.JWTConfig{
		SecretKey:        "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTTL:        3600,
		RefreshTTL:       604800,
	})
	return repo, NewAuthUseCase(repo, tokens, zap.NewNop())
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	repo, uc := newAuthFixture()

	registered, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, registered.Role)

	stored := repo.users[registered.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cretpass", stored.Password, "password must never be stored in clear")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, uc := newAuthFixture()

	input := &dto.RegisterInput{Email: "alice@example.com", Password: "s3cretpass", FullName: "Alice"}
	_, err := uc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo, uc := newAuthFixture()

	registered, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice",
	})
	require.NoError(t, err)

	pair, err := uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	stored := repo.users[registered.ID]
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// Unknown email reads the same as a wrong password.
	_, err = uc.Login(context.Background(), &dto.LoginInput{Email: "nobody@example.com", Password: "s3cretpass"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestRefreshAcceptsOnlyStoredToken(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice",
	})
	require.NoError(t, err)

	first, err := uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	access, err := uc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access.AccessToken)

	_, err = uc.Refresh(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestLoginRotationInvalidatesOldRefreshToken(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice",
	})
	require.NoError(t, err)

	first, err := uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	second, err := uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	if first.RefreshToken == second.RefreshToken {
		t.Skip("token pair identical within the same second, rotation not observable")
	}

	_, err = uc.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	_, err = uc.Refresh(context.Background(), second.RefreshToken)
	require.NoError(t, err)
}
