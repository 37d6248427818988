package store

import (
	"context"
	"sync"

	"vidyabandhan/backend/models"
)

// In-memory implementations, used by tests and by any wiring that does not
// need durability.

type MemRecordStore struct {
	mu    sync.RWMutex
	table map[string][]byte
}

func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{table: make(map[string][]byte)}
}

func (s *MemRecordStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.table[key]
	if !ok {
		return nil, nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value, nil
}

func (s *MemRecordStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.table[key] = v
	return nil
}

type MemBlobStore struct {
	mu    sync.RWMutex
	table map[string]models.Resource
	order []string
}

func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{table: make(map[string]models.Resource)}
}

func (s *MemBlobStore) Put(_ context.Context, res models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.table[res.ID]; !ok {
		s.order = append(s.order, res.ID)
	}
	s.table[res.ID] = res
	return nil
}

func (s *MemBlobStore) ListAll(_ context.Context) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resources := make([]models.Resource, 0, len(s.order))
	for _, id := range s.order {
		resources = append(resources, s.table[id])
	}
	return resources, nil
}
