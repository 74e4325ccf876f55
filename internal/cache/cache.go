// Package cache holds values that are expensive to produce and shared by
// several consumers: loaded lazily on first use, kept until invalidated.
package cache

import "sync"

// Value loads a T once and hands the same result to every caller until
// Invalidate is called. Failed loads are not cached.
type Value[T any] struct {
	mu     sync.Mutex
	load   func() (T, error)
	val    T
	loaded bool
	loads  int
}

// New creates a value backed by load.
func New[T any](load func() (T, error)) *Value[T] {
	return &Value[T]{load: load}
}

// Get returns the cached value, loading it first if needed.
func (v *Value[T]) Get() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return v.val, nil
	}
	val, err := v.load()
	v.loads++
	if err != nil {
		var zero T
		return zero, err
	}
	v.val = val
	v.loaded = true
	return val, nil
}

// Invalidate drops the cached value; the next Get reloads it.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	var zero T
	v.val = zero
	v.loaded = false
	v.mu.Unlock()
}

// Loaded reports whether a value is currently cached.
func (v *Value[T]) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Loads returns how many times the loader has run.
func (v *Value[T]) Loads() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loads
}
