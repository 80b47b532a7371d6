package usecase

import (
	"context"
	"time"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/auth/dto"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/user"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUseCase struct {
	users  user.Repository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthUseCase(users user.Repository, tokens *auth.TokenManager, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		users:  users,
		tokens: tokens,
		logger: log,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*dto.RegisteredUser, error) {
	existing, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("user already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Role:     role,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", u.ID), zap.String("role", u.Role))

	return &dto.RegisteredUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}, nil
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.TokenPair, error) {
	u, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	accessToken, err := uc.tokens.SignAccess(u)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.tokens.SignRefresh(u)
	if err != nil {
		return nil, err
	}

	// The stored refresh token is the only one accepted by Refresh, so a
	// login invalidates previous sessions' refresh tokens.
	if err := uc.users.UpdateRefreshToken(ctx, u.ID, &refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.AccessToken, error) {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	u, err := uc.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil || u.RefreshToken == nil || *u.RefreshToken != refreshToken {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	accessToken, err := uc.tokens.SignAccess(u)
	if err != nil {
		return nil, err
	}
	return &dto.AccessToken{AccessToken: accessToken}, nil
}
