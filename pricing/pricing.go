// Package pricing selects the per-unit price for a purchase quantity.
// Both the cart (to derive a line's wholesale flag) and checkout (to lock
// the charged price) go through the same rule, so the two always agree.
package pricing

import "tokopos/models"

// IsWholesale reports whether quantity qualifies for p's wholesale tier.
func IsWholesale(p models.Product, quantity int) bool {
	return p.HasWholesaleTier() && quantity >= p.MinWholesaleQty
}

// UnitPrice returns the per-unit price for buying quantity units of p.
func UnitPrice(p models.Product, quantity int) float64 {
	if IsWholesale(p, quantity) {
		return p.WholesalePrice
	}
	return p.Price
}
