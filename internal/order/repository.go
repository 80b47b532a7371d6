package order

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
)

type Repository interface {
	// CreateFromBasket converts the user's basket lines into orders as one
	// transaction: product rows are locked, stock is validated in line
	// order, decremented, one pending order is inserted per line, and the
	// consumed lines are deleted. Any failure rolls the whole call back.
	CreateFromBasket(ctx context.Context, userID string) ([]model.Order, error)

	FindAll(ctx context.Context) ([]model.Order, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
}
