package dto

import "github.com/fekuna/go-shop/internal/model"

type OrderResponse struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	Quantity  int               `json:"quantity"`
	Status    model.OrderStatus `json:"status"`
}

func ToOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Status:    o.Status,
	}
}
