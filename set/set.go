// Package set provides an unordered collection of unique values.
package set

import (
	"iter"
	"maps"
)

// A Set holds each value at most once. Construct one with [New]; it is
// not safe for concurrent use.
type Set[T comparable] struct {
	m map[T]struct{}
}

// New constructs a Set holding the given values.
func New[T comparable](vs ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(vs))}
	for _, v := range vs {
		s.m[v] = struct{}{}
	}
	return s
}

// Add inserts v, reporting whether it was newly added.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove deletes v, reporting whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if _, ok := s.m[v]; !ok {
		return false
	}
	delete(s.m, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// IsEmpty reports whether the set holds no values.
func (s *Set[T]) IsEmpty() bool {
	return len(s.m) == 0
}

// All returns an iterator over the set's values in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}
