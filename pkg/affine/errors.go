package affine

import (
	"errors"
	"fmt"
)

// ErrInvalidKey indicates a key whose multiplicative part is zero. Such a
// transform collapses every input to the same character and cannot be
// inverted.
var ErrInvalidKey = errors.New("affine: invalid key: multiplicative part must be non-zero")

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("affine.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError wraps err with the failing operation.
func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
