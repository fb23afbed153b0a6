package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// StoreError wraps a failure raised by the underlying store driver.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreFault reports whether err originated in the store driver.
func IsStoreFault(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func storeErr(op, collection string, err error) error {
	return &StoreError{Op: op, Collection: collection, Err: err}
}

func notFound(collection, field string, value any) error {
	return fmt.Errorf("%s with %s %v: %w", collection, field, value, ErrNotFound)
}
