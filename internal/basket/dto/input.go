package dto

type AddToBasketInput struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required"`
}

type UpdateBasketInput struct {
	Quantity int `json:"quantity" validate:"required"`
}
