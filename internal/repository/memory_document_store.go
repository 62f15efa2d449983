package repository

import (
	"context"
	"sync"

	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"
)

// MemoryDocumentStore keeps documents in process memory. It records every
// call so tests can assert on store traffic, and can be told to fail.
type MemoryDocumentStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]entity.JSON
	getCalls []StoreCall
	setCalls []StoreCall
	getErr   error
	setErr   error
}

// StoreCall captures a single Get or Set against the store.
type StoreCall struct {
	Collection string
	ID         string
	Data       entity.JSON
	Merge      bool
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string]map[string]entity.JSON)}
}

// WithGetError makes subsequent Get calls fail with err.
func (m *MemoryDocumentStore) WithGetError(err error) *MemoryDocumentStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
	return m
}

// WithSetError makes subsequent Set calls fail with err.
func (m *MemoryDocumentStore) WithSetError(err error) *MemoryDocumentStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
	return m
}

func (m *MemoryDocumentStore) Get(_ context.Context, collection, id string) (entity.JSON, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCalls = append(m.getCalls, StoreCall{Collection: collection, ID: id})
	if m.getErr != nil {
		return nil, m.getErr
	}

	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, domainRepo.ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

func (m *MemoryDocumentStore) Set(_ context.Context, collection, id string, partial entity.JSON, merge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setCalls = append(m.setCalls, StoreCall{Collection: collection, ID: id, Data: partial.Clone(), Merge: merge})
	if m.setErr != nil {
		return m.setErr
	}

	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]entity.JSON)
	}
	if merge {
		m.docs[collection][id] = m.docs[collection][id].Merge(partial)
	} else {
		m.docs[collection][id] = entity.JSON{}.Merge(partial)
	}
	return nil
}

// GetCalls returns a snapshot of Get calls.
func (m *MemoryDocumentStore) GetCalls() []StoreCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StoreCall(nil), m.getCalls...)
}

// SetCalls returns a snapshot of Set calls.
func (m *MemoryDocumentStore) SetCalls() []StoreCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StoreCall(nil), m.setCalls...)
}

// Calls returns the total number of Get and Set calls.
func (m *MemoryDocumentStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.getCalls) + len(m.setCalls)
}
