package dto

import (
	"time"

	"github.com/fekuna/go-shop/internal/model"
)

type ProductFilters struct {
	CategoryID  string `json:"category_id"`
	SearchQuery string `json:"search_query"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductList struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}
