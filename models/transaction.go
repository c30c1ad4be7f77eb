package models

import "time"

// Transaction is an immutable record of one completed checkout. Items carry
// the cart-line snapshots with their frozen wholesale flags; the cashier
// snapshot carries no credential.
type Transaction struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
	Cashier   Employee   `json:"cashier"`
}
