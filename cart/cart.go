// Package cart holds the in-memory cart aggregate for the active session
// and mirrors it into the record store after every successful mutation.
package cart

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"tokopos/models"
	"tokopos/pricing"
	"tokopos/storedb"
)

// StockError reports a requested quantity that exceeds a product's
// available stock. The operation it aborts leaves the cart unchanged.
type StockError struct {
	ProductName string
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d unit(s) available", e.ProductName, e.Available)
}

// Service is the cart aggregate: at most one line per product, each line's
// quantity within [1, stock]. All mutations are serialized.
type Service struct {
	mu    sync.Mutex
	store storedb.Store
	items []models.CartItem
	owner string
}

func NewService(store storedb.Store) *Service {
	s := &Service{store: store}
	s.restore()
	return s
}

// restore loads the persisted snapshot. A snapshot that fails to parse
// degrades to an empty cart instead of failing the session.
func (s *Service) restore() {
	var items []models.CartItem
	if err := s.store.Get(storedb.Cart, &items); err != nil {
		if !errors.Is(err, storedb.ErrNotFound) {
			log.Printf("cart: discarding unreadable snapshot: %v", err)
		}
		return
	}
	s.items = items
}

// Items returns a copy of the current lines.
func (s *Service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums the lines using each line's frozen wholesale flag.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.items)
}

func total(items []models.CartItem) float64 {
	var sum float64
	for _, line := range items {
		sum += line.Subtotal()
	}
	return sum
}

// AddOne puts one more unit of p in the cart, inserting a new line at
// quantity 1 when none exists. It fails with a StockError when p is out of
// stock or the line has already reached p's stock.
func (s *Service) AddOne(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Stock <= 0 {
		return &StockError{ProductName: p.Name, Available: 0}
	}

	for i, line := range s.items {
		if line.Product.ID != p.ID {
			continue
		}
		if line.Quantity >= p.Stock {
			return &StockError{ProductName: p.Name, Available: p.Stock}
		}
		s.items[i].Quantity++
		s.items[i].IsWholesale = pricing.IsWholesale(line.Product, s.items[i].Quantity)
		return s.persist()
	}

	s.items = append(s.items, models.CartItem{
		Product:     p,
		Quantity:    1,
		IsWholesale: pricing.IsWholesale(p, 1),
	})
	return s.persist()
}

// AdjustQuantity moves the line for productID by delta, clamped at zero.
// Quantity zero removes the line. The wholesale flag is recomputed from the
// tier rule unless an explicit override is supplied. Exceeding the
// product's stock aborts with a StockError and no change. Unknown product
// ids are a no-op, matching the add-then-delete flow of the screens.
func (s *Service) AdjustQuantity(productID string, delta int, wholesale *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.items {
		if line.Product.ID != productID {
			continue
		}

		newQuantity := line.Quantity + delta
		if newQuantity < 0 {
			newQuantity = 0
		}
		if newQuantity > line.Product.Stock {
			return &StockError{ProductName: line.Product.Name, Available: line.Product.Stock}
		}

		if newQuantity == 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}

		s.items[i].Quantity = newQuantity
		if wholesale != nil {
			s.items[i].IsWholesale = *wholesale
		} else {
			s.items[i].IsWholesale = pricing.IsWholesale(line.Product, newQuantity)
		}
		return s.persist()
	}
	return nil
}

// Clear empties the aggregate and removes the persisted snapshot.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.store.Delete(storedb.Cart)
}

// SwitchUser wipes the cart when the authenticated identity changes,
// including logout (empty id).
func (s *Service) SwitchUser(employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == employeeID {
		return nil
	}
	s.owner = employeeID
	s.items = nil
	return s.store.Delete(storedb.Cart)
}

// persist mirrors the line set into the store; an empty cart deletes the
// snapshot. A persistence failure keeps the in-memory mutation and is
// surfaced to the caller.
func (s *Service) persist() error {
	if len(s.items) == 0 {
		if err := s.store.Delete(storedb.Cart); err != nil {
			return fmt.Errorf("cart: removing snapshot: %w", err)
		}
		return nil
	}
	if err := s.store.Put(storedb.Cart, s.items); err != nil {
		return fmt.Errorf("cart: saving snapshot: %w", err)
	}
	return nil
}
