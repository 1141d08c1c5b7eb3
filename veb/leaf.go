package veb

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	wordShift = 6                // 2**6 == 64 bits per word
	wordMask  = 1<<wordShift - 1 // 0b_111111
)

// leaf is a presence bitmap over a universe of up to 2**16 values.
type leaf []uint64

func newLeaf(width uint8) leaf {
	return make(leaf, (uint64(1)<<width+wordMask)>>wordShift)
}

func (b leaf) has(v uint64) bool {
	return (b[v>>wordShift]>>(v&wordMask))&0x01 != 0
}

func (b leaf) set(v uint64) {
	b[v>>wordShift] |= 1 << (v & wordMask)
}

func (b leaf) unset(v uint64) {
	b[v>>wordShift] &^= 1 << (v & wordMask)
}

// next returns the lowest set bit strictly above v.
func (b leaf) next(v uint64) (uint64, bool) {
	v++

	idx := v >> wordShift
	if idx >= uint64(len(b)) {
		return 0, false
	}

	// the first (maybe partial) word
	if word := b[idx] >> (v & wordMask); word != 0 {
		return v + uint64(bits.TrailingZeros64(word)), true
	}

	for idx++; idx < uint64(len(b)); idx++ {
		if word := b[idx]; word != 0 {
			return idx<<wordShift + uint64(bits.TrailingZeros64(word)), true
		}
	}

	return 0, false
}

// prev returns the highest set bit strictly below v.
func (b leaf) prev(v uint64) (uint64, bool) {
	if v == 0 {
		return 0, false
	}
	v--

	idx := v >> wordShift

	// the first (maybe partial) word: drop the bits above v
	if word := b[idx] << (wordMask - v&wordMask); word != 0 {
		return v - uint64(bits.LeadingZeros64(word)), true
	}

	for idx > 0 {
		idx--
		if word := b[idx]; word != 0 {
			return idx<<wordShift + wordMask - uint64(bits.LeadingZeros64(word)), true
		}
	}

	return 0, false
}

func (b leaf) first() (uint64, bool) {
	for idx, word := range b {
		if word != 0 {
			return uint64(idx)<<wordShift + uint64(bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

func (b leaf) last() (uint64, bool) {
	for idx := len(b) - 1; idx >= 0; idx-- {
		if word := b[idx]; word != 0 {
			return uint64(idx)<<wordShift + wordMask - uint64(bits.LeadingZeros64(word)), true
		}
	}
	return 0, false
}

func (b leaf) count() (cnt uint64) {
	for _, word := range b {
		cnt += popcount.Count(word)
	}
	return
}
