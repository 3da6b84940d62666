package cart

import "github.com/sh1vam31/food-inventory-console/internal/domain"

// Cart is an immutable, insertion-ordered set of lines. Transitions return a
// new Cart and never touch the receiver.
type Cart struct {
	lines []domain.CartLine
}

// Add increments the line for item, or appends a new line with quantity 1
// holding a snapshot of item.
func (c Cart) Add(item domain.MenuItem) Cart {
	next := c.clone()
	if i := next.indexOf(item.ID); i >= 0 {
		next.lines[i].Quantity++
		return next
	}

	snapshot := item
	snapshot.Ingredients = append([]domain.Ingredient(nil), item.Ingredients...)
	next.lines = append(next.lines, domain.CartLine{
		MenuItemID: item.ID,
		MenuItem:   snapshot,
		Quantity:   1,
	})
	return next
}

// SetQuantity overwrites the quantity of an existing line. A quantity of zero
// or less removes the line. Unknown ids leave the cart unchanged.
func (c Cart) SetQuantity(menuItemID int64, quantity int) (Cart, bool) {
	i := c.indexOf(menuItemID)
	if i < 0 {
		return c, false
	}
	if quantity <= 0 {
		return c.Remove(menuItemID)
	}
	if c.lines[i].Quantity == quantity {
		return c, false
	}

	next := c.clone()
	next.lines[i].Quantity = quantity
	return next, true
}

func (c Cart) Remove(menuItemID int64) (Cart, bool) {
	i := c.indexOf(menuItemID)
	if i < 0 {
		return c, false
	}

	next := Cart{lines: make([]domain.CartLine, 0, len(c.lines)-1)}
	next.lines = append(next.lines, c.lines[:i]...)
	next.lines = append(next.lines, c.lines[i+1:]...)
	return next, true
}

func (c Cart) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), c.lines...)
}

func (c Cart) Line(menuItemID int64) (domain.CartLine, bool) {
	if i := c.indexOf(menuItemID); i >= 0 {
		return c.lines[i], true
	}
	return domain.CartLine{}, false
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalPrice is recomputed from the lines on every call.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Composition is the payload sent to the inventory service, in line order.
func (c Cart) Composition() []domain.CompositionLine {
	out := make([]domain.CompositionLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, domain.CompositionLine{MenuItemID: l.MenuItemID, Quantity: l.Quantity})
	}
	return out
}

func (c Cart) indexOf(menuItemID int64) int {
	for i, l := range c.lines {
		if l.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	return Cart{lines: append([]domain.CartLine(nil), c.lines...)}
}
