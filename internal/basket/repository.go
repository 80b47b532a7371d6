package basket

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.BasketItem) error

	// FindByID is scoped to the owning user: a line belonging to someone
	// else is reported as absent, never as foreign.
	FindByID(ctx context.Context, id, userID string) (*model.BasketItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*model.BasketItem, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.BasketItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
