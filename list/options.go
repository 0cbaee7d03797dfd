package list

// Option is a list configuration option.
type Option[V comparable] interface {
	apply(*listOptions[V])
}

type listOptions[V comparable] struct {
	equal func(a, b V) bool
}

// WithEqual option configures the equality used by Contains and RemoveValue.
//
// By default values are compared with ==.
func WithEqual[V comparable](equal func(a, b V) bool) Option[V] {
	if equal == nil {
		panic("list: nil equality function")
	}

	return funcOption[V](func(opts *listOptions[V]) {
		opts.equal = equal
	})
}

type funcOption[V comparable] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}
