package dto

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	ParentID    *string `json:"parentId" validate:"omitempty,uuid4"`
}

type UpdateCategoryInput struct {
	ID          string  `json:"-"`
	Name        string  `json:"name" validate:"omitempty"`
	Description string  `json:"description" validate:"omitempty"`
	Image       string  `json:"image" validate:"omitempty"`
	ParentID    *string `json:"parentId" validate:"omitempty,uuid4"`
}
