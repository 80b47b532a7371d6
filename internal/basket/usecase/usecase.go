package usecase

import (
	"context"
	"time"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/basket"
	"github.com/fekuna/go-shop/internal/basket/dto"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product"
	productdto "github.com/fekuna/go-shop/internal/product/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type basketUseCase struct {
	repo     basket.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewBasketUseCase(repo basket.Repository, products product.Repository, log *zap.Logger) basket.UseCase {
	return &basketUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *basketUseCase) AddItem(ctx context.Context, principal auth.Principal, input *dto.AddToBasketInput) (*dto.BasketResponse, error) {
	if input.Quantity <= 0 {
		return nil, apperrors.BadRequest("quantity must be greater than 0")
	}

	p, err := uc.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product %s not found", input.ProductID)
	}
	// Stock is advisory here; nothing is reserved until order placement.
	if p.Stock < input.Quantity {
		return nil, apperrors.InsufficientStock(input.ProductID)
	}

	existing, err := uc.repo.FindByUserAndProduct(ctx, principal.ID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += input.Quantity
		if err := uc.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return toResponse(existing), nil
	}

	now := time.Now()
	item := &model.BasketItem{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    principal.ID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toResponse(item), nil
}

func (uc *basketUseCase) ListItems(ctx context.Context, principal auth.Principal) ([]dto.BasketResponse, error) {
	items, err := uc.repo.FindAllByUser(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.BasketResponse{}, nil
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := uc.products.BatchFindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[string]*model.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	responses := make([]dto.BasketResponse, len(items))
	for i, item := range items {
		responses[i] = *toResponse(&item)
		if p, ok := productsByID[item.ProductID]; ok {
			pr := productdto.ToProductResponse(p)
			responses[i].Product = &pr
		}
	}
	return responses, nil
}

func (uc *basketUseCase) UpdateItem(ctx context.Context, principal auth.Principal, id string, quantity int) (*dto.BasketResponse, error) {
	item, err := uc.repo.FindByID(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("basket item %s not found", id)
	}

	if quantity <= 0 {
		return nil, apperrors.BadRequest("quantity must be greater than 0")
	}

	p, err := uc.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product %s not found", item.ProductID)
	}
	if p.Stock < quantity {
		return nil, apperrors.InsufficientStock(item.ProductID)
	}

	item.Quantity = quantity
	if err := uc.repo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return toResponse(item), nil
}

func (uc *basketUseCase) RemoveItem(ctx context.Context, principal auth.Principal, id string) error {
	item, err := uc.repo.FindByID(ctx, id, principal.ID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperrors.NotFound("basket item %s not found", id)
	}
	return uc.repo.Delete(ctx, item.ID)
}

func (uc *basketUseCase) Clear(ctx context.Context, principal auth.Principal) error {
	return uc.repo.DeleteAllByUser(ctx, principal.ID)
}

func toResponse(item *model.BasketItem) *dto.BasketResponse {
	return &dto.BasketResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}
