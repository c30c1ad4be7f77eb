package storedb

import "errors"

// Collection names. Each collection holds one JSON document: a list of
// records for the catalog-style collections, a single snapshot for the
// session and cart.
const (
	Products       = "products"
	Employees      = "employees"
	Transactions   = "transactions"
	CurrentSession = "current-session"
	Cart           = "cart"
)

// ErrNotFound is returned by Get when the collection has never been written
// or has been deleted.
var ErrNotFound = errors.New("storedb: collection not found")

// Store persists named collections as JSON documents. The store is a local,
// single-writer resource; implementations only need to be safe for the
// callers in this process.
type Store interface {
	Get(collection string, v interface{}) error
	Put(collection string, v interface{}) error
	Delete(collection string) error
	Close() error
}
