package models

// CartItem is one product's line in the cart. The wholesale flag is decided
// when the line is mutated and stays frozen through checkout, so the charged
// price does not move if the catalog changes in between.
type CartItem struct {
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
	IsWholesale bool    `json:"is_wholesale"`
}

// UnitPrice resolves the charged per-unit price from the line's frozen
// wholesale flag rather than recomputing tier eligibility.
func (i CartItem) UnitPrice() float64 {
	if i.IsWholesale && i.Product.WholesalePrice > 0 {
		return i.Product.WholesalePrice
	}
	return i.Product.Price
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}
