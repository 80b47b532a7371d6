package basket

import (
	"context"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/basket/dto"
)

type UseCase interface {
	AddItem(ctx context.Context, principal auth.Principal, input *dto.AddToBasketInput) (*dto.BasketResponse, error)
	ListItems(ctx context.Context, principal auth.Principal) ([]dto.BasketResponse, error)
	UpdateItem(ctx context.Context, principal auth.Principal, id string, quantity int) (*dto.BasketResponse, error)
	RemoveItem(ctx context.Context, principal auth.Principal, id string) error
	Clear(ctx context.Context, principal auth.Principal) error
}
