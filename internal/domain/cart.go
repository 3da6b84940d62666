package domain

// CartLine is one menu item selection. MenuItem is a copy taken when the
// line was created and is only used for display and local totals.
type CartLine struct {
	MenuItemID int64    `json:"menu_item_id"`
	MenuItem   MenuItem `json:"menu_item"`
	Quantity   int      `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.MenuItem.Price * float64(l.Quantity)
}

// CompositionLine is what gets sent upstream for checks and order creation.
// Prices and names are recomputed by the inventory service.
type CompositionLine struct {
	MenuItemID int64 `json:"food_item_id"`
	Quantity   int   `json:"quantity"`
}
