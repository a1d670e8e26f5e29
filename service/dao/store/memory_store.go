package store

import (
	"context"
	"sync"

	"github.com/viant/alds/service/dao"
)

// MemoryStore is a generic in-memory implementation of dao.Service keeping
// entities of type *T mapped by a comparable key K.
//
// Records are cloned on the way in and out when a clone function is supplied,
// and List returns them in insertion order.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keys        []K
	keySelector func(*T) K
	clone       func(*T) *T
	filter      func(*T, []*dao.Parameter) bool
}

// Option customises MemoryStore
type Option[K comparable, T any] func(s *MemoryStore[K, T])

// WithClone sets function copying records crossing the store boundary
func WithClone[K comparable, T any](clone func(*T) *T) Option[K, T] {
	return func(s *MemoryStore[K, T]) {
		s.clone = clone
	}
}

// WithFilter sets List parameter filter
func WithFilter[K comparable, T any](filter func(*T, []*dao.Parameter) bool) Option[K, T] {
	return func(s *MemoryStore[K, T]) {
		s.filter = filter
	}
}

func (s *MemoryStore[K, T]) copy(v *T) *T {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	var zero K
	if key == zero {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.records[key] = s.copy(v)
	return nil
}

// Load returns a record by key or dao.ErrNotFound.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return s.copy(v), nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return dao.ErrNotFound
	}
	delete(s.records, key)
	for i, candidate := range s.keys {
		if candidate == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return nil
}

// List returns stored records matching parameters in insertion order.
func (s *MemoryStore[K, T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.keys))
	for _, key := range s.keys {
		v := s.records[key]
		if s.filter != nil && !s.filter(v, parameters) {
			continue
		}
		out = append(out, s.copy(v))
	}
	return out, nil
}

// NewMemoryStore creates a new MemoryStore.
// keySelector extracts the entity key (usually the ID field) from a value.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, opts ...Option[K, T]) *MemoryStore[K, T] {
	ret := &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

var _ dao.Service[string, struct{}] = (*MemoryStore[string, struct{}])(nil)
