package auth

import (
	"context"

	"github.com/fekuna/go-shop/internal/auth/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*dto.RegisteredUser, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AccessToken, error)
}
