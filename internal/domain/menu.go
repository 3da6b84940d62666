package domain

type MenuItem struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	IsAvailable bool         `json:"is_available"`
	CreatedAt   string       `json:"created_at"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is the amount of one raw material needed per unit of a menu item.
type Ingredient struct {
	ID                      int64   `json:"id"`
	RawMaterialID           int64   `json:"raw_material_id"`
	QuantityRequiredPerUnit float64 `json:"quantity_required_per_unit"`
	RawMaterialName         string  `json:"raw_material_name"`
	RawMaterialUnit         string  `json:"raw_material_unit"`
}
