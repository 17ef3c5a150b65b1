package screens

import (
	"sync"
)

// Collection holds one remote list for the lifetime of a screen activation.
// The list is stored exactly as delivered and never edited in place.
type Collection[T any] struct {
	mu    sync.RWMutex
	phase Phase
	items []T
}

// Phase returns the current phase, Idle before the first load
func (c *Collection[T]) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.phase == "" {
		return PhaseIdle
	}
	return c.phase
}

// Items returns a copy of the list so callers cannot mutate the snapshot
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first item matching match
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseLoading {
		return false
	}
	c.phase = PhaseLoading
	return true
}

func (c *Collection[T]) succeed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, len(items))
	copy(c.items, items)
	c.phase = PhaseReady
}

func (c *Collection[T]) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.phase = PhaseError
}

// append adds an item the server has just confirmed
func (c *Collection[T]) append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}
