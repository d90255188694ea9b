// Package cache provides a fixed-capacity in-memory key-value cache with
// least-recently-used eviction.
package cache

import "github.com/scrip-scratch/knwlge-base/list"

// An LRU is a fixed-capacity key-value cache. When an insertion would
// exceed the capacity, the least recently used entry is evicted. Recency
// is kept in a doubly linked list of keys, most recent at the back, so
// both promotion and eviction are O(1). Not safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	entries  map[K]*entry[K, V]
	order    list.Doubly[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *list.Node[K]
}

// New constructs an LRU holding at most capacity entries. It panics if
// capacity is not positive.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: non-positive LRU capacity")
	}
	return &LRU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*entry[K, V], capacity),
	}
}

// Put stores v under k and promotes k to most recently used. If storing a
// new key exceeds the capacity, the least recently used entry is evicted
// and returned.
func (c *LRU[K, V]) Put(k K, v V) (evictedKey K, evictedValue V, evicted bool) {
	if e, ok := c.entries[k]; ok {
		e.value = v
		c.order.MoveToBack(e.node)
		return evictedKey, evictedValue, false
	}

	if len(c.entries) == c.capacity {
		// The front of the order list is the least recently used key.
		evictedKey, _ = c.order.Front()
		evictedValue = c.entries[evictedKey].value
		evicted = true

		c.order.PopFront()
		delete(c.entries, evictedKey)
	}

	c.entries[k] = &entry[K, V]{value: v, node: c.order.PushBack(k)}
	return evictedKey, evictedValue, evicted
}

// Get returns the value stored under k, promoting it to most recently
// used. It returns false if k is not cached.
func (c *LRU[K, V]) Get(k K) (V, bool) {
	e, ok := c.entries[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToBack(e.node)
	return e.value, true
}

// Delete removes k, reporting whether it was cached.
func (c *LRU[K, V]) Delete(k K) bool {
	e, ok := c.entries[k]
	if !ok {
		return false
	}
	c.order.Remove(e.node)
	delete(c.entries, k)
	return true
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the maximum number of entries the cache holds.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}
