/*
Package list implements a singly linked list with a sentinel head.

The sentinel precedes the first element so that insertion and removal at
index 0 take the same path as anywhere else in the list.
*/
package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly linked list of comparable values.
//
// The zero value is a ready to use empty list.
// A List must not be used concurrently without external synchronization.
type List[V comparable] struct {
	head  node[V]
	len   int
	equal func(a, b V) bool
}

// New creates an empty list.
func New[V comparable](opts ...Option[V]) *List[V] {
	var o listOptions[V]
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[V]{equal: o.equal}
}

// FromSlice creates a list holding values in order.
// It returns ErrInvalidArgument if values is empty.
func FromSlice[V comparable](values []V, opts ...Option[V]) (*List[V], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("list: from slice: empty input: %w", ErrInvalidArgument)
	}

	l := New(opts...)

	prev := &l.head
	for _, v := range values {
		prev.link(&node[V]{value: v})
		prev = prev.next
	}
	l.len = len(values)

	return l, nil
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Insert inserts value v at index. Valid indexes are [0, l.Len()],
// where l.Len() appends to the back of the list.
func (l *List[V]) Insert(index int, v V) error {
	if err := checkIndex("insert", index, l.len+1); err != nil {
		return err
	}

	l.prev(index).link(&node[V]{value: v})
	l.len++

	return nil
}

// PushFront inserts value v at the front of the list.
func (l *List[V]) PushFront(v V) {
	l.head.link(&node[V]{value: v})
	l.len++
}

// PushBack inserts value v at the back of the list.
// The list keeps no tail reference so this walks every element.
func (l *List[V]) PushBack(v V) {
	l.prev(l.len).link(&node[V]{value: v})
	l.len++
}

// Remove removes the element at index and returns its value.
// Valid indexes are [0, l.Len()).
func (l *List[V]) Remove(index int) (V, error) {
	if err := checkIndex("remove", index, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.removeAfter(l.prev(index)), nil
}

// PopFront removes the front element and returns its value.
func (l *List[V]) PopFront() (V, error) {
	if err := checkIndex("pop front", 0, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.removeAfter(&l.head), nil
}

// PopBack removes the back element and returns its value.
func (l *List[V]) PopBack() (V, error) {
	if err := checkIndex("pop back", l.len-1, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.removeAfter(l.prev(l.len - 1)), nil
}

// RemoveValue removes the first element equal to v.
// It reports whether an element was removed.
func (l *List[V]) RemoveValue(v V) bool {
	for prev := &l.head; prev.next != nil; prev = prev.next {
		if l.eq(prev.next.value, v) {
			l.removeAfter(prev)
			return true
		}
	}

	return false
}

// Contains reports whether any element equals v.
func (l *List[V]) Contains(v V) bool {
	for n := l.head.next; n != nil; n = n.next {
		if l.eq(n.value, v) {
			return true
		}
	}

	return false
}

// Get returns the value at index. Valid indexes are [0, l.Len()).
func (l *List[V]) Get(index int) (V, error) {
	if err := checkIndex("get", index, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.prev(index).next.value, nil
}

// Front returns the value of the front element.
func (l *List[V]) Front() (V, error) {
	if err := checkIndex("front", 0, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.head.next.value, nil
}

// Back returns the value of the back element.
func (l *List[V]) Back() (V, error) {
	if err := checkIndex("back", l.len-1, l.len); err != nil {
		var zero V
		return zero, err
	}

	return l.prev(l.len - 1).next.value, nil
}

// Set overwrites the value at index. Valid indexes are [0, l.Len()).
func (l *List[V]) Set(index int, v V) error {
	if err := checkIndex("set", index, l.len); err != nil {
		return err
	}

	l.prev(index).next.value = v

	return nil
}

// Clear removes all elements.
func (l *List[V]) Clear() {
	for l.head.next != nil {
		l.head.unlink().release()
	}
	l.len = 0
}

// Do calls function f on each element value of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(v V) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// All returns an iterator over index and value pairs in forward order.
func (l *List[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for n := l.head.next; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values returns a copy of the element values in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)
	l.Do(func(v V) bool {
		values = append(values, v)
		return true
	})

	return values
}

// String returns the list size followed by its values, e.g. "size: 2, 1 -> 2 -> nil".
func (l *List[V]) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "size: %d, ", l.len)
	l.Do(func(v V) bool {
		fmt.Fprintf(&b, "%v -> ", v)
		return true
	})
	b.WriteString("nil")

	return b.String()
}

// prev returns the node preceding index, walking index links from the sentinel.
func (l *List[V]) prev(index int) *node[V] {
	p := &l.head
	for i := 0; i < index; i++ {
		p = p.next
	}
	return p
}

func (l *List[V]) removeAfter(prev *node[V]) V {
	v := prev.unlink().release()
	l.len--
	return v
}

func (l *List[V]) eq(a, b V) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return a == b
}
