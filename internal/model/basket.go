package model

// BasketItem is one (user, product, quantity) line of an unconfirmed purchase.
// A user has at most one line per product; repeated adds merge quantities.
type BasketItem struct {
	BaseModel
	UserID    string   `db:"user_id" json:"user_id"`
	ProductID string   `db:"product_id" json:"product_id"`
	Quantity  int      `db:"quantity" json:"quantity"`
	Product   *Product `db:"-" json:"-"` // Joined data
}
