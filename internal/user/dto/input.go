package dto

type UpdateUserInput struct {
	ID       string `json:"-"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}
