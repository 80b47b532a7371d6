package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/go-shop/internal/category"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/internal/product"
	"github.com/fekuna/go-shop/internal/product/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/fekuna/go-shop/pkg/cache"
	"github.com/fekuna/go-shop/pkg/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const productIndex = "products"

type productUseCase struct {
	repo       product.Repository
	categories category.Repository
	cache      *cache.RedisClient
	es         *search.Client
	logger     *zap.Logger
}

func NewProductUseCase(repo product.Repository, categories category.Repository, cache *cache.RedisClient, es *search.Client, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		cache:      cache,
		es:         es,
		logger:     log,
	}
}

func (uc *productUseCase) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	cat, err := uc.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.NotFound("category %s not found", input.CategoryID)
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Invalidate Cache
	go uc.invalidateProductCache(context.Background())

	// Sync to Elastic
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"description": { "type": "text" },
				"category_id": { "type": "keyword" },
				"price": { "type": "double" },
				"stock": { "type": "integer" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product %s not found", id)
	}
	return p, nil
}

func (uc *productUseCase) List(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	// 1. Check Cache
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	// 2. Search via Elastic (if query present)
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name^3", "description"},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			var esProducts []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					esProducts = append(esProducts, p)
				}
			}
			return esProducts, res.Hits.Total.Value, nil
		}
		// If ES fails, fall through to DB
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	// 3. DB Query (Fallback or Standard List)
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	// 4. Set Cache
	if cacheKey != "" && uc.cache != nil {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) Update(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product %s not found", input.ID)
	}

	if input.CategoryID != "" {
		cat, err := uc.categories.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, apperrors.NotFound("category %s not found", input.CategoryID)
		}
		p.CategoryID = input.CategoryID
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.Image != "" {
		p.Image = input.Image
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	// Invalidate Cache
	go uc.invalidateProductCache(context.Background())
	// Sync ES
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.NotFound("product %s not found", id)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Invalidate Cache
	go uc.invalidateProductCache(context.Background())
	// Remove from ES
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}
