// Package dynarr: option and error declarations for the growable array.
package dynarr

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the capacity floor: new arrays start here and
	// shrinking never goes below it.
	DefaultCapacity = 10

	// NotFound is returned by IndexOf when the value is absent.
	NotFound = -1
)

// Sentinel errors for array operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid bound for
	// the operation (read bound [0,N); insertion bound [0,N]).
	ErrIndexOutOfRange = errors.New("dynarr: index out of range")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dynarr: invalid option supplied")

	// ErrConcurrentModification is reported by an Iterator whose array was
	// structurally modified after the iterator was created.
	ErrConcurrentModification = errors.New("dynarr: concurrent modification during iteration")
)

// Option configures an Array before creation.
type Option func(*options)

// options holds construction parameters.
type options struct {
	capacity int
	err      error
}

// defaultOptions returns construction defaults: DefaultCapacity, no error.
func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}

// WithCapacity sets the initial capacity of the backing store.
//
//	n > 0: start with capacity n
//	n == 0: valid, but the store is grown on first Append
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.capacity = n
	}
}
