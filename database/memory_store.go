package database

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process DocumentStore used by tests. The optional
// Fail* hooks let a test inject an error on a specific operation to exercise
// partial-failure handling in the services.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document

	FailGet    func(collection, id string) error
	FailPut    func(collection, id string) error
	FailDelete func(collection, id string) error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	if s.FailGet != nil {
		if err := s.FailGet(collection, id); err != nil {
			return nil, false, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, false, nil
	}
	return copyDocument(doc), true, nil
}

func (s *MemoryStore) Put(ctx context.Context, collection, id string, doc Document, merge bool) error {
	if s.FailPut != nil {
		if err := s.FailPut(collection, id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]Document)
		s.collections[collection] = coll
	}

	if merge {
		if existing, ok := coll[id]; ok {
			merged := copyDocument(existing)
			for k, v := range doc {
				merged[k] = v
			}
			coll[id] = merged
			return nil
		}
	}

	coll[id] = copyDocument(doc)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if s.FailDelete != nil {
		if err := s.FailDelete(collection, id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) Enumerate(ctx context.Context, collection string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll := s.collections[collection]
	entries := make([]Entry, 0, len(coll))
	for id, doc := range coll {
		entries = append(entries, Entry{ID: id, Doc: copyDocument(doc)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
