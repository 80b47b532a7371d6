package product

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	BatchFindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	// DecrementStock conditionally reduces stock and returns the updated row.
	// It returns (nil, nil) when the product has fewer than qty units left;
	// the caller decides how to report that. ext is the executor to run on,
	// so order placement can decrement inside its own transaction.
	DecrementStock(ctx context.Context, ext sqlx.ExtContext, id string, qty int) (*model.Product, error)
}
