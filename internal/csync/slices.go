package csync

import (
	"iter"
	"slices"
	"sync"
)

// Slice is a thread-safe ordered slice.
type Slice[T any] struct {
	inner []T
	mu    sync.RWMutex
}

// NewSlice creates a new thread-safe slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// NewSliceFrom creates a new thread-safe slice that takes ownership of the
// given slice.
func NewSliceFrom[T any](s []T) *Slice[T] {
	return &Slice[T]{inner: s}
}

// Append appends a value to the end of the slice and returns its index.
func (s *Slice[T]) Append(v T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = append(s.inner, v)
	return len(s.inner) - 1
}

// Get returns the value at the given index.
func (s *Slice[T]) Get(i int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.inner) {
		var zero T
		return zero, false
	}
	return s.inner[i], true
}

// Len returns the number of elements in the slice.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inner)
}

// Take empties the slice and returns its previous contents.
func (s *Slice[T]) Take() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.inner
	s.inner = nil
	return old
}

// Collect returns a copy of the slice contents.
func (s *Slice[T]) Collect() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inner)
}

// Seq returns an iterator over a snapshot of the slice.
func (s *Slice[T]) Seq() iter.Seq[T] {
	inner := s.Collect()
	return func(yield func(T) bool) {
		for _, v := range inner {
			if !yield(v) {
				return
			}
		}
	}
}
