package disjointset

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that an operation referenced a value that was never
// registered with MakeSet.
var ErrNotFound = errors.New("disjointset: value not found")

// notFound wraps ErrNotFound with the offending value.
func notFound(v any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, v)
}
