package veb

import "math/bits"

const (
	maxUniverseWidth = 32 // 2**32 is the largest 2**(2**k) a uint64 can hold

	defaultLeafSize uint64 = 16
	minLeafSize     uint64 = 2
	maxLeafSize     uint64 = 1 << 16
)

// universeWidth returns log2(u) if u is 2**(2**k) for some k >= 0.
func universeWidth(u uint64) (uint8, bool) {
	if u < 2 || u&(u-1) != 0 {
		return 0, false // not a power of two (or 1 = 2**0)
	}

	w := bits.TrailingZeros64(u)

	if w&(w-1) != 0 || w > maxUniverseWidth {
		return 0, false // the width itself must be a power of two
	}

	return uint8(w), true
}

// leafWidth converts a leaf size into the widest universe still kept as a bitmap:
// u <= size  <=>  log2(u) <= floor(log2(size)).
func leafWidth(size uint64) uint8 {
	return uint8(bits.Len64(size) - 1)
}

// high, low and join implement the cluster decomposition of a value inside
// a universe of 2**(2*half) values.
func high(v uint64, half uint8) uint64 {
	return v >> half
}

func low(v uint64, half uint8) uint64 {
	return v & (uint64(1)<<half - 1)
}

func join(h, l uint64, half uint8) uint64 {
	return h<<half | l
}
