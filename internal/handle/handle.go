// Package handle implements an opaque handle registry, the mechanism by
// which cfr_new and mcts_new hand callers a reference to solver state they
// cannot otherwise name or inspect. Handles are UUID strings rather than
// pointers so the boundary in rpcshim can carry them across a JSON request
// without exposing internal memory layout.
package handle

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a caller references a handle that was never
// issued, or has already been destroyed.
var ErrNotFound = fmt.Errorf("handle: not found")

// Registry maps opaque string handles to solver instances of one type T.
// rpcshim keeps one Registry per kind (cfr_new trainers, mcts_new
// searches); handles are UUIDs, so they do not collide across registries.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Issue stores value under a freshly generated handle and returns it.
func (r *Registry[T]) Issue(value T) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id] = value
	return id
}

// Lookup returns the value registered under id, or ErrNotFound.
func (r *Registry[T]) Lookup(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Destroy removes id from the registry. Destroying an unknown or
// already-destroyed handle is not an error.
func (r *Registry[T]) Destroy(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

// Len reports the number of live handles, primarily for tests and metrics.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
