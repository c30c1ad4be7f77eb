// Package checkout turns the cart into a persisted transaction: validate
// against live stock, record the transaction, decrement the catalog, clear
// the cart.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tokopos/cart"
	"tokopos/models"
	"tokopos/storedb"
)

var (
	// ErrNotAuthenticated is returned when checkout runs with no active
	// session. The screens never get here; the guard stays anyway.
	ErrNotAuthenticated = errors.New("checkout: no authenticated session")

	// ErrEmptyCart is returned when there is nothing to sell.
	ErrEmptyCart = errors.New("checkout: cart is empty")
)

// NotFoundError reports a cart line whose product no longer exists in the
// catalog at checkout time.
type NotFoundError struct {
	ProductName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ProductName)
}

type Orchestrator struct {
	mu    sync.Mutex
	store storedb.Store
	cart  *cart.Service
	now   func() time.Time
}

func NewOrchestrator(store storedb.Store, cartSvc *cart.Service) *Orchestrator {
	return &Orchestrator{store: store, cart: cartSvc, now: time.Now}
}

// Checkout validates every cart line against a freshly read catalog, then
// writes: transaction first, stock second. Validation failures abort before
// any write; a write failure after the transaction record can over-count a
// sale but never leaves stock decremented without a record.
func (o *Orchestrator) Checkout(cashier *models.Employee) (*models.Transaction, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if cashier == nil {
		return nil, ErrNotAuthenticated
	}

	items := o.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var products []models.Product
	if err := o.store.Get(storedb.Products, &products); err != nil && !errors.Is(err, storedb.ErrNotFound) {
		return nil, fmt.Errorf("checkout: reading catalog: %w", err)
	}
	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.ID] = p.Stock
	}

	for _, line := range items {
		live, ok := stock[line.Product.ID]
		if !ok {
			return nil, &NotFoundError{ProductName: line.Product.Name}
		}
		if live < line.Quantity {
			return nil, &cart.StockError{ProductName: line.Product.Name, Available: live}
		}
	}

	// Prices come from the line snapshots with their frozen wholesale
	// flags, not from the re-read catalog.
	var total float64
	for _, line := range items {
		total += line.Subtotal()
	}

	now := o.now()
	trx := models.Transaction{
		ID:        fmt.Sprintf("TRX%d", now.UnixMilli()),
		Items:     items,
		Total:     total,
		Timestamp: now,
		Cashier:   cashier.Sanitized(),
	}

	var history []models.Transaction
	if err := o.store.Get(storedb.Transactions, &history); err != nil && !errors.Is(err, storedb.ErrNotFound) {
		return nil, fmt.Errorf("checkout: reading transaction log: %w", err)
	}
	history = append(history, trx)
	if err := o.store.Put(storedb.Transactions, history); err != nil {
		return nil, fmt.Errorf("checkout: recording transaction: %w", err)
	}

	for i := range products {
		for _, line := range items {
			if products[i].ID == line.Product.ID {
				products[i].Stock -= line.Quantity
			}
		}
	}
	if err := o.store.Put(storedb.Products, products); err != nil {
		return nil, fmt.Errorf("checkout: updating stock: %w", err)
	}

	if err := o.cart.Clear(); err != nil {
		// Sale is already recorded; a stale snapshot is recoverable.
		log.Printf("checkout: clearing cart after sale %s: %v", trx.ID, err)
	}

	return &trx, nil
}
