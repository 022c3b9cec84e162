package set

import (
	"slices"

	"gopkg.in/typ.v4"
)

// Set is an unordered collection of unique keys with O(1) insertion,
// removal and membership tests. Keys are constrained to ordered types so
// that Keys() can return a deterministic sorted snapshot.
type Set[T typ.Ordered] struct {
	m map[T]struct{}
}

// New creates new Set instance.
func New[T typ.Ordered]() *Set[T] {
	return &Set[T]{
		m: make(map[T]struct{}),
	}
}

// Add adds key v to the set. Returns false if the key was already present.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove removes key v from the set. Returns false if the key was not present.
func (s *Set[T]) Remove(v T) bool {
	if _, ok := s.m[v]; !ok {
		return false
	}
	delete(s.m, v)
	return true
}

// Has returns true if key v is present in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of keys in the set.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// Keys returns a sorted snapshot of all keys in the set.
// Sorting makes batch operations over the snapshot deterministic.
func (s *Set[T]) Keys() []T {
	keys := make([]T, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, typ.Compare[T])
	return keys
}
