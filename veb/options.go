package veb

import "fmt"

type options struct {
	leafSize uint64
}

// Option configures a Tree at construction time.
type Option func(*options) error

// WithLeafSize sets the largest universe a node stores as a flat bitmap instead
// of recursing further. It must be within [2, 65536]; the default is 16.
//
// Larger leaves trade memory for a shallower recursion.
func WithLeafSize(size uint64) Option {
	return func(o *options) error {
		if size < minLeafSize || size > maxLeafSize {
			return fmt.Errorf("%w: %d is not within [%d, %d]", ErrInvalidLeafSize, size, minLeafSize, maxLeafSize)
		}
		o.leafSize = size
		return nil
	}
}

func buildOptions(opts []Option) (options, error) {
	var o = options{
		leafSize: defaultLeafSize,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}

	return o, nil
}
