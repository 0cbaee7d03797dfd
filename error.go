package slist

import "github.com/mgnsk/slist/list"

var (
	// ErrInvalidArgument indicates a sequence cannot be built from the given input.
	ErrInvalidArgument = list.ErrInvalidArgument

	// ErrIndexOutOfRange indicates a position outside the valid range of an operation.
	ErrIndexOutOfRange = list.ErrIndexOutOfRange
)

// IndexError describes a positional operation that was called with an invalid index.
type IndexError = list.IndexError
