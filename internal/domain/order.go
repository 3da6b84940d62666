package domain

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

type Order struct {
	ID         int64       `json:"id"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status"`
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"order_items"`
}

type OrderItem struct {
	ID           int64   `json:"id"`
	MenuItemID   int64   `json:"food_item_id"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
	MenuItemName string  `json:"food_item_name"`
}
