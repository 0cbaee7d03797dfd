package slist

import "github.com/mgnsk/slist/list"

// Option is a sequence configuration option.
type Option[V comparable] = list.Option[V]

// WithEqual option configures the equality used by Contains and RemoveValue.
//
// By default values are compared with ==. It panics if equal is nil.
func WithEqual[V comparable](equal func(a, b V) bool) Option[V] {
	return list.WithEqual(equal)
}
