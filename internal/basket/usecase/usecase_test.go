package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/basket/dto"
	"github.com/fekuna/go-shop/internal/model"
	productdto "github.com/fekuna/go-shop/internal/product/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBasketRepo struct {
	items []*model.BasketItem
}

func (r *fakeBasketRepo) Create(_ context.Context, item *model.BasketItem) error {
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeBasketRepo) FindByID(_ context.Context, id, userID string) (*model.BasketItem, error) {
	for _, item := range r.items {
		if item.ID == id && item.UserID == userID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBasketRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*model.BasketItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBasketRepo) FindAllByUser(_ context.Context, userID string) ([]model.BasketItem, error) {
	var result []model.BasketItem
	for _, item := range r.items {
		if item.UserID == userID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *fakeBasketRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	for _, item := range r.items {
		if item.ID == id {
			item.Quantity = quantity
		}
	}
	return nil
}

func (r *fakeBasketRepo) Delete(_ context.Context, id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBasketRepo) DeleteAllByUser(_ context.Context, userID string) error {
	var kept []*model.BasketItem
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeProductRepo struct {
	products map[string]*model.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) BatchFindByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	var result []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, _ sqlx.ExtContext, id string, qty int) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return nil, nil
	}
	p.Stock -= qty
	copied := *p
	return &copied, nil
}

func newTestProduct(stock int) *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Name:      "widget",
		Price:     9.99,
		Stock:     stock,
	}
}

func newBasketFixture(products ...*model.Product) (*fakeBasketRepo, *fakeProductRepo, *basketUseCase) {
	basketRepo := &fakeBasketRepo{}
	productRepo := &fakeProductRepo{products: map[string]*model.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	uc := NewBasketUseCase(basketRepo, productRepo, zap.NewNop()).(*basketUseCase)
	return basketRepo, productRepo, uc
}

func TestAddItemMergesExistingLine(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	first, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	second, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "adding the same product twice must not create a second line")
	assert.Equal(t, 5, second.Quantity)

	items, err := uc.ListItems(context.Background(), principal)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	_, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	_, err = uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: -1})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestAddItemUnknownProduct(t *testing.T) {
	_, _, uc := newBasketFixture()
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	_, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: uuid.New().String(), Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddItemInsufficientStock(t *testing.T) {
	p := newTestProduct(3)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	_, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 4})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInsufficientStock, apperrors.KindOf(err))
}

func TestUpdateItemForeignLineIsNotFound(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	owner := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}
	other := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	line, err := uc.AddItem(context.Background(), owner, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	// Another user probing an existing line id must not learn it exists.
	_, err = uc.UpdateItem(context.Background(), other, line.ID, 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = uc.RemoveItem(context.Background(), other, line.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	line, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	updated, err := uc.UpdateItem(context.Background(), principal, line.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = uc.UpdateItem(context.Background(), principal, line.ID, 0)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))

	_, err = uc.UpdateItem(context.Background(), principal, line.ID, 11)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInsufficientStock, apperrors.KindOf(err))
}

func TestListItemsIncludesProductDetails(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	_, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	items, err := uc.ListItems(context.Background(), principal)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, p.ID, items[0].Product.ID)
	assert.Equal(t, p.Name, items[0].Product.Name)
	assert.Equal(t, p.Price, items[0].Product.Price)

	// An empty basket lists as an empty slice, not nil.
	empty, err := uc.ListItems(context.Background(), auth.Principal{ID: uuid.New().String(), Role: model.RoleUser})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestClearIsIdempotent(t *testing.T) {
	p := newTestProduct(10)
	_, _, uc := newBasketFixture(p)
	principal := auth.Principal{ID: uuid.New().String(), Role: model.RoleUser}

	_, err := uc.AddItem(context.Background(), principal, &dto.AddToBasketInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(context.Background(), principal))

	items, err := uc.ListItems(context.Background(), principal)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an empty basket is a no-op, not an error.
	require.NoError(t, uc.Clear(context.Background(), principal))
}
