package product

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
