package model

type Product struct {
	BaseModel
	CategoryID  string  `db:"category_id" json:"category_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Stock       int     `db:"stock" json:"stock"`
	Image       string  `db:"image" json:"image"`
}
