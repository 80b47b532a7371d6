package user

import (
	"context"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/user/dto"
)

type UseCase interface {
	List(ctx context.Context) ([]dto.UserProfile, error)
	Get(ctx context.Context, id string, principal auth.Principal) (*dto.UserProfile, error)
	Update(ctx context.Context, input *dto.UpdateUserInput, principal auth.Principal) (*dto.UserProfile, error)
	Delete(ctx context.Context, id string, principal auth.Principal) error
}
