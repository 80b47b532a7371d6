package dto

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  string  `json:"categoryId" validate:"required,uuid4"`
	Image       string  `json:"image" validate:"required,max=200"`
}

type UpdateProductInput struct {
	ID          string   `json:"-"`
	Name        string   `json:"name" validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	CategoryID  string   `json:"categoryId" validate:"omitempty,uuid4"`
	Image       string   `json:"image" validate:"omitempty,max=200"`
}
