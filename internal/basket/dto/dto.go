package dto

import (
	productdto "github.com/fekuna/go-shop/internal/product/dto"
)

type BasketResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`

	// Product is filled on listings; single-line responses omit it.
	Product *productdto.ProductResponse `json:"product,omitempty"`
}
