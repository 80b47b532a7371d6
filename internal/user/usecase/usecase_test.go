package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/user/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
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

func (r *fakeUserRepo) FindAllByRole(_ context.Context, role string) ([]model.User, error) {
	var result []model.User
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
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

func (r *fakeUserRepo) seed(email, role string) *model.User {
	u := &model.User{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Email:     email,
		Password:  "$2a$10$notarealhash",
		FullName:  "Test User",
		Role:      role,
	}
	r.users[u.ID] = u
	return u
}

func TestListReturnsCustomersOnly(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	uc := NewUserUseCase(repo, zap.NewNop())

	customer := repo.seed("alice@example.com", model.RoleUser)
	repo.seed("root@example.com", model.RoleAdmin)

	profiles, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, customer.ID, profiles[0].ID)
}

func TestGetSelfOrAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	uc := NewUserUseCase(repo, zap.NewNop())

	alice := repo.seed("alice@example.com", model.RoleUser)
	bob := repo.seed("bob@example.com", model.RoleUser)
	admin := repo.seed("root@example.com", model.RoleAdmin)

	got, err := uc.Get(context.Background(), alice.ID, auth.Principal{ID: alice.ID, Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, alice.Email, got.Email)

	_, err = uc.Get(context.Background(), alice.ID, auth.Principal{ID: bob.ID, Role: model.RoleUser})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = uc.Get(context.Background(), alice.ID, auth.Principal{ID: admin.ID, Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), uuid.New().String(), auth.Principal{ID: admin.ID, Role: model.RoleAdmin})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	uc := NewUserUseCase(repo, zap.NewNop())

	alice := repo.seed("alice@example.com", model.RoleUser)
	principal := auth.Principal{ID: alice.ID, Role: model.RoleUser}

	_, err := uc.Update(context.Background(), &dto.UpdateUserInput{ID: alice.ID, Password: "newsecret"}, principal)
	require.NoError(t, err)

	stored := repo.users[alice.ID]
	assert.NotEqual(t, "newsecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
}

func TestUpdateEmailConflict(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	uc := NewUserUseCase(repo, zap.NewNop())

	alice := repo.seed("alice@example.com", model.RoleUser)
	repo.seed("bob@example.com", model.RoleUser)
	principal := auth.Principal{ID: alice.ID, Role: model.RoleUser}

	_, err := uc.Update(context.Background(), &dto.UpdateUserInput{ID: alice.ID, Email: "bob@example.com"}, principal)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// Keeping your own email is not a conflict.
	got, err := uc.Update(context.Background(), &dto.UpdateUserInput{ID: alice.ID, Email: "alice@example.com"}, principal)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestDeleteAuthorization(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	uc := NewUserUseCase(repo, zap.NewNop())

	alice := repo.seed("alice@example.com", model.RoleUser)
	bob := repo.seed("bob@example.com", model.RoleUser)

	err := uc.Delete(context.Background(), alice.ID, auth.Principal{ID: bob.ID, Role: model.RoleUser})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, uc.Delete(context.Background(), alice.ID, auth.Principal{ID: alice.ID, Role: model.RoleUser}))
	_, ok := repo.users[alice.ID]
	assert.False(t, ok)
}
