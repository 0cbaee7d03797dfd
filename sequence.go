/*
Package slist implements a singly linked sequence safe for concurrent use.

Sequence wraps list.List and holds a reader-biased lock for the whole duration
of every operation, so each splice is atomic with respect to other goroutines.
*/
package slist

import (
	"iter"

	"github.com/mgnsk/slist/list"
	"github.com/puzpuzpuz/xsync/v2"
)

// Sequence is an insertion ordered sequence of values safe for concurrent use.
type Sequence[V comparable] struct {
	list *list.List[V]
	mu   *xsync.RBMutex
}

// New creates an empty sequence.
func New[V comparable](opts ...Option[V]) *Sequence[V] {
	return &Sequence[V]{
		list: list.New(opts...),
		mu:   xsync.NewRBMutex(),
	}
}

// FromSlice creates a sequence holding values in order.
// It returns ErrInvalidArgument if values is empty.
func FromSlice[V comparable](values []V, opts ...Option[V]) (*Sequence[V], error) {
	l, err := list.FromSlice(values, opts...)
	if err != nil {
		return nil, err
	}

	return &Sequence[V]{
		list: l,
		mu:   xsync.NewRBMutex(),
	}, nil
}

// Len returns the number of values in the sequence.
func (s *Sequence[V]) Len() int {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Len()
}

// IsEmpty reports whether the sequence has no values.
func (s *Sequence[V]) IsEmpty() bool {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.IsEmpty()
}

// Insert inserts value v at index. Valid indexes are [0, s.Len()].
func (s *Sequence[V]) Insert(index int, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Insert(index, v)
}

// PushFront inserts value v at the front of the sequence.
func (s *Sequence[V]) PushFront(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushFront(v)
}

// PushBack inserts value v at the back of the sequence.
func (s *Sequence[V]) PushBack(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushBack(v)
}

// Remove removes the value at index and returns it. Valid indexes are [0, s.Len()).
func (s *Sequence[V]) Remove(index int) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Remove(index)
}

// PopFront removes the front value and returns it.
func (s *Sequence[V]) PopFront() (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.PopFront()
}

// PopBack removes the back value and returns it.
func (s *Sequence[V]) PopBack() (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.PopBack()
}

// RemoveValue removes the first value equal to v and reports whether one was found.
func (s *Sequence[V]) RemoveValue(v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.RemoveValue(v)
}

// Contains reports whether any value equals v.
func (s *Sequence[V]) Contains(v V) bool {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Contains(v)
}

// Get returns the value at index. Valid indexes are [0, s.Len()).
func (s *Sequence[V]) Get(index int) (V, error) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Get(index)
}

// Front returns the front value.
func (s *Sequence[V]) Front() (V, error) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Front()
}

// Back returns the back value.
func (s *Sequence[V]) Back() (V, error) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Back()
}

// Set overwrites the value at index. Valid indexes are [0, s.Len()).
func (s *Sequence[V]) Set(index int, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Set(index, v)
}

// Clear removes all values.
func (s *Sequence[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Clear()
}

// Values returns a snapshot of the values in order.
func (s *Sequence[V]) Values() []V {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Values()
}

// All returns an iterator over a snapshot of index and value pairs.
// The sequence is not locked while the caller consumes the iterator.
func (s *Sequence[V]) All() iter.Seq2[int, V] {
	values := s.Values()

	return func(yield func(int, V) bool) {
		for i, v := range values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String returns the size followed by the values, e.g. "size: 2, 1 -> 2 -> nil".
func (s *Sequence[V]) String() string {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.String()
}

// Update calls f with the underlying list under the write lock.
// It is used to apply several operations atomically.
// f must not retain l.
func (s *Sequence[V]) Update(f func(l *list.List[V]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f(s.list)
}

// View calls f with the underlying list under the read lock.
// f must not change or retain l.
func (s *Sequence[V]) View(f func(l *list.List[V])) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	f(s.list)
}
