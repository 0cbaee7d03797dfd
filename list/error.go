package list

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a list cannot be built from the given input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange indicates a position outside the valid range of an operation.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError describes a positional operation that was called with an invalid index.
type IndexError struct {
	Op    string
	Index int
	// Max is the exclusive upper bound of the valid range.
	Max int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: %s: index %d out of range [0, %d): %s", e.Op, e.Index, e.Max, ErrIndexOutOfRange)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(op string, index, max int) error {
	if index < 0 || index >= max {
		return &IndexError{Op: op, Index: index, Max: max}
	}
	return nil
}
