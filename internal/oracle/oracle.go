// Package oracle provides a slow but obviously correct ordered set of uint64
// values. It mirrors the veb.Tree API so the two can be cross-checked.
package oracle

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

type Set struct {
	tree *redblacktree.Tree
}

func New(vals ...uint64) *Set {
	s := &Set{
		tree: redblacktree.NewWith(utils.UInt64Comparator),
	}
	for _, val := range vals {
		s.Insert(val)
	}
	return s
}

func (s *Set) Len() uint64 {
	return uint64(s.tree.Size())
}

func (s *Set) Find(val uint64) bool {
	_, found := s.tree.Get(val)
	return found
}

// Insert adds val and reports whether it was absent.
func (s *Set) Insert(val uint64) bool {
	if s.Find(val) {
		return false
	}
	s.tree.Put(val, struct{}{})
	return true
}

// Delete removes val and reports whether it was present.
func (s *Set) Delete(val uint64) bool {
	if !s.Find(val) {
		return false
	}
	s.tree.Remove(val)
	return true
}

func (s *Set) Min() (uint64, bool) {
	return key(s.tree.Left())
}

func (s *Set) Max() (uint64, bool) {
	return key(s.tree.Right())
}

// CloseAbove returns the smallest member strictly greater than val.
func (s *Set) CloseAbove(val uint64) (uint64, bool) {
	if val == math.MaxUint64 {
		return 0, false
	}
	node, _ := s.tree.Ceiling(val + 1)
	return key(node)
}

// CloseBelow returns the largest member strictly less than val.
func (s *Set) CloseBelow(val uint64) (uint64, bool) {
	if val == 0 {
		return 0, false
	}
	node, _ := s.tree.Floor(val - 1)
	return key(node)
}

// Keys returns all members in increasing order.
func (s *Set) Keys() []uint64 {
	keys := make([]uint64, 0, s.tree.Size())

	for it := s.tree.Iterator(); it.Next(); {
		keys = append(keys, it.Key().(uint64))
	}

	return keys
}

func key(node *redblacktree.Node) (uint64, bool) {
	if node == nil {
		return 0, false
	}
	return node.Key.(uint64), true
}
