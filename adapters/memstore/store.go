// Package memstore is the in-process Registry Store: records live in memory for the lifetime of the
// process and are never expired or deleted.
package memstore

import (
	"context"
	"sync"

	"apidiscovery/domain"
	"apidiscovery/interfaces"
	"apidiscovery/service"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[domain.RecordKey]domain.EndpointRecord
}

// NewStore creates an empty in-memory store.
func NewStore() interfaces.Store {
	return &memoryStore{
		records: make(map[domain.RecordKey]domain.EndpointRecord),
	}
}

func (s *memoryStore) Find(_ context.Context, key domain.RecordKey) (domain.EndpointRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return domain.EndpointRecord{}, service.NewEntityNotFoundError("service is not registered", nil)
	}
	return record, nil
}

// Upsert keeps the first record written for a key; later writes are dropped.
func (s *memoryStore) Upsert(_ context.Context, record domain.EndpointRecord) error {
	key := record.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return nil
	}
	s.records[key] = record
	return nil
}
