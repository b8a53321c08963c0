package records

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a lookup by an id the store does not hold.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable signals the backing store could not be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// PartialWriteError reports a batch append that left only some of the
// submitted rows written. The caller surfaces this to the user; no
// automatic reconciliation is attempted.
type PartialWriteError struct {
	Written int
	Total   int
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write: %d of %d rows written: %v", e.Written, e.Total, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
