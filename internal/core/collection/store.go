package collection

import (
	"context"
	"sync"
)

// Ticket identifies one load of a Store. Only the most recently issued ticket
// may commit, so a slow response can never overwrite a newer one.
type Ticket uint64

// Store holds the last committed collection of one entity type.
type Store[T Entity] struct {
	mu     sync.RWMutex
	items  []T
	issued Ticket
}

// NewStore returns an empty store.
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{}
}

// Begin issues the ticket for a new load and supersedes every earlier one.
func (s *Store[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit replaces the collection with items if t is still the latest ticket.
// It reports whether the items were applied.
func (s *Store[T]) Commit(t Ticket, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t != s.issued {
		return false
	}
	s.items = items
	return true
}

// Snapshot returns the current collection. Callers must treat it as read-only.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Len returns the number of held entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Apply runs a reconciliation step against the current collection.
func (s *Store[T]) Apply(step func([]T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = step(s.items)
}

// Added appends a confirmed new entity.
func (s *Store[T]) Added(item T) {
	s.Apply(func(items []T) []T { return Append(items, item) })
}

// Updated swaps in a confirmed entity by id. It reports whether the entity was held.
func (s *Store[T]) Updated(item T) bool {
	var found bool
	s.Apply(func(items []T) []T {
		var out []T
		out, found = Replace(items, item)
		return out
	})
	return found
}

// Removed drops a confirmed deletion by id. It reports whether the entity was held.
func (s *Store[T]) Removed(id string) bool {
	var found bool
	s.Apply(func(items []T) []T {
		var out []T
		out, found = Remove(items, id)
		return out
	})
	return found
}

// Load fetches a fresh collection and commits it unless a newer load began in
// the meantime. The fetched items are returned either way; applied reports
// whether they became the held collection. A failed fetch leaves the store untouched.
func (s *Store[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) (items []T, applied bool, err error) {
	t := s.Begin()
	items, err = fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	return items, s.Commit(t, items), nil
}
