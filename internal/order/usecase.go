package order

import (
	"context"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/order/dto"
)

type UseCase interface {
	// Place converts the principal's basket into orders, one per basket
	// line, atomically against inventory.
	Place(ctx context.Context, principal auth.Principal) ([]dto.OrderResponse, error)

	ListAll(ctx context.Context) ([]dto.OrderResponse, error)
	ListForUser(ctx context.Context, userID string, principal auth.Principal) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id string, principal auth.Principal) (*dto.OrderResponse, error)
}

// EventPublisher pushes order lifecycle events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
