package storedb

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

// BadgerStore keeps every collection under its own key in an embedded
// badger database. No server, no locking beyond badger's own file lock.
type BadgerStore struct {
	db *badger.DB
}

// Open opens (or creates) the store at dir.
func Open(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// OpenFromEnv opens the store at POS_DATA_DIR, defaulting to ./data.
func OpenFromEnv() (*BadgerStore, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}

	dir := os.Getenv("POS_DATA_DIR")
	if dir == "" {
		dir = "./data"
	}
	return Open(dir)
}

func (s *BadgerStore) Get(collection string, v interface{}) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collection))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

func (s *BadgerStore) Put(collection string, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(collection), buf)
	})
}

func (s *BadgerStore) Delete(collection string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(collection))
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
