package usecase

import (
	"context"
	"time"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/user"
	"github.com/fekuna/go-shop/internal/user/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, log *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *userUseCase) List(ctx context.Context) ([]dto.UserProfile, error) {
	// Admin listing covers customer accounts only, not other admins.
	users, err := uc.repo.FindAllByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, err
	}

	profiles := make([]dto.UserProfile, len(users))
	for i, u := range users {
		profiles[i] = toProfile(&u)
	}
	return profiles, nil
}

func (uc *userUseCase) Get(ctx context.Context, id string, principal auth.Principal) (*dto.UserProfile, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("user not found")
	}
	if !principal.IsAdmin() && principal.ID != id {
		return nil, apperrors.Forbidden("you can only view your own profile")
	}

	profile := toProfile(u)
	return &profile, nil
}

func (uc *userUseCase) Update(ctx context.Context, input *dto.UpdateUserInput, principal auth.Principal) (*dto.UserProfile, error) {
	u, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("user not found")
	}
	if !principal.IsAdmin() && principal.ID != input.ID {
		return nil, apperrors.Forbidden("you can only update your own profile")
	}

	if input.Email != "" {
		existing, err := uc.repo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != input.ID {
			return nil, apperrors.Conflict("email already in use")
		}
		u.Email = input.Email
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hashed)
	}

	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("user updated", zap.String("user_id", u.ID))

	profile := toProfile(u)
	return &profile, nil
}

func (uc *userUseCase) Delete(ctx context.Context, id string, principal auth.Principal) error {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.NotFound("user not found")
	}
	if !principal.IsAdmin() && principal.ID != id {
		return apperrors.Forbidden("you can only delete your own profile")
	}
	return uc.repo.Delete(ctx, id)
}

func toProfile(u *model.User) dto.UserProfile {
	return dto.UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
