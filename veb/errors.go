package veb

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUniverse = errors.New("veb: invalid universe size")
	ErrOutOfRange      = errors.New("veb: value out of range")
	ErrInvalidLeafSize = errors.New("veb: invalid leaf size")
	ErrInvariant       = errors.New("veb: invariant violated")
)

// InvalidUniverseError is returned by New when the universe size is not 2**(2**k).
type InvalidUniverseError struct {
	Universe uint64
}

func (e *InvalidUniverseError) Error() string {
	return fmt.Sprintf("veb: invalid universe size %d: must be 2^(2^k) for some k >= 0 and at most 2^%d",
		e.Universe, maxUniverseWidth)
}

func (e *InvalidUniverseError) Is(target error) bool {
	return target == ErrInvalidUniverse
}

// OutOfRangeError is returned by Insert for a value outside [0, Universe).
type OutOfRangeError struct {
	Value    uint64
	Universe uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("veb: value %d is out of range [0, %d)", e.Value, e.Universe)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
