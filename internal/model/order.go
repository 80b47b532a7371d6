package model

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an immutable record of one product/quantity committed against
// inventory. One row is created per consumed basket line.
type Order struct {
	BaseModel
	UserID    string      `db:"user_id" json:"user_id"`
	ProductID string      `db:"product_id" json:"product_id"`
	Quantity  int         `db:"quantity" json:"quantity"`
	Status    OrderStatus `db:"status" json:"status"`
}
