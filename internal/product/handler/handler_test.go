package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductUseCase struct {
	lastFilters *dto.ProductFilters
}

func (uc *fakeProductUseCase) Create(_ context.Context, _ *dto.CreateProductInput) (*model.Product, error) {
	return nil, nil
}

func (uc *fakeProductUseCase) Get(_ context.Context, _ string) (*model.Product, error) {
	return nil, nil
}

func (uc *fakeProductUseCase) List(_ context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	uc.lastFilters = filters
	return nil, 0, nil
}

func (uc *fakeProductUseCase) Update(_ context.Context, _ *dto.UpdateProductInput) (*model.Product, error) {
	return nil, nil
}

func (uc *fakeProductUseCase) Delete(_ context.Context, _ string) error {
	return nil
}

func TestListPaginationParams(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 0},
		{"valid values", "?page=3&pageSize=25", 3, 25},
		{"zero page falls back", "?page=0&pageSize=10", 1, 10},
		{"negative values fall back", "?page=-2&pageSize=-5", 1, 0},
		{"malformed values fall back", "?page=abc&pageSize=xyz", 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeProductUseCase{}
			h := NewProductHandler(uc, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/products"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, uc.lastFilters)
			assert.Equal(t, tc.page, uc.lastFilters.Page)
			assert.Equal(t, tc.pageSize, uc.lastFilters.PageSize)
		})
	}
}
