package models

type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	WholesalePrice  float64 `json:"wholesale_price"`
	MinWholesaleQty int     `json:"min_wholesale_qty"`
	Category        string  `json:"category"`
	Stock           int     `json:"stock"`
	StockNote       string  `json:"stock_note,omitempty"`
}

// HasWholesaleTier reports whether the product sells at a wholesale price.
// The tier is active only when both the wholesale price and the minimum
// quantity are set.
func (p Product) HasWholesaleTier() bool {
	return p.WholesalePrice > 0 && p.MinWholesaleQty > 0
}
