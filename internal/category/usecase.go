package category

import (
	"context"

	"github.com/fekuna/go-shop/internal/category/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateCategoryInput) (*dto.CategoryResponse, error)
	Get(ctx context.Context, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, input *dto.UpdateCategoryInput) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}
