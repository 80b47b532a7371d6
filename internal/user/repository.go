package user

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAllByRole(ctx context.Context, role string) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error
	Delete(ctx context.Context, id string) error
}
