package fibonacci

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind produced by a Calculator. Callers
// test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// IndexError is returned when the requested index cannot be computed.
type IndexError struct {
	// Index is the rejected index.
	Index int
	// Reason explains why the index was rejected.
	Reason string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid argument: index %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrInvalidArgument so that errors.Is matches the error kind.
func (e *IndexError) Unwrap() error {
	return ErrInvalidArgument
}
