package domain

import "encoding/json"

// Verdict is a point-in-time answer to "can current stock satisfy this cart".
// It goes stale as soon as the cart or the server-side stock changes.
type Verdict struct {
	CanFulfill          bool       `json:"can_fulfill"`
	Shortages           []Shortage `json:"shortages"`
	EvaluatedTotalPrice float64    `json:"evaluated_total_price"`
}

// Shortage names a short raw material, or carries Error when the problem
// can't be pinned on one ingredient (deleted or unavailable menu item).
type Shortage struct {
	RawMaterialID   int64   `json:"raw_material_id"`
	RawMaterialName string  `json:"raw_material_name"`
	Required        float64 `json:"required"`
	Available       float64 `json:"available"`
	Shortage        float64 `json:"shortage"`
	Unit            string  `json:"unit"`
	Error           string  `json:"error,omitempty"`
}

// Itemized reports whether the shortage names an ingredient.
func (s Shortage) Itemized() bool {
	return s.RawMaterialID != 0 || s.RawMaterialName != ""
}

// MarshalJSON writes ingredient shortages with every quantity, zero stock
// included, and the generic form as {"error": ...} only.
func (s Shortage) MarshalJSON() ([]byte, error) {
	if !s.Itemized() && s.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: s.Error})
	}

	type shortage Shortage
	return json.Marshal(shortage(s))
}
