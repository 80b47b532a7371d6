package category

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindChildIDs(ctx context.Context, id string) ([]string, error)
	Update(ctx context.Context, category *model.Category) error

	// HasProducts reports whether any product still references the category.
	HasProducts(ctx context.Context, id string) (bool, error)

	// DeleteDetachingChildren re-roots child categories and deletes the row
	// in one transaction.
	DeleteDetachingChildren(ctx context.Context, id string) error
}
