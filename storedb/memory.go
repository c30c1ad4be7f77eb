package storedb

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store. It backs the tests and can stand in
// wherever durability is not needed.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(collection string, v interface{}) error {
	s.mu.RLock()
	buf, ok := s.data[collection]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(buf, v)
}

func (s *MemoryStore) Put(collection string, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[collection] = buf
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(collection string) error {
	s.mu.Lock()
	delete(s.data, collection)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
