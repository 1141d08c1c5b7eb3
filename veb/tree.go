package veb

import "fmt"

// Tree is an ordered set of integers from a fixed universe [0, Universe()).
type Tree struct {
	root     *node
	universe uint64
	leafSize uint64
}

// New creates an empty tree over [0, u). The universe size must be 2**(2**k):
// 2, 4, 16, 256, 65536 or 2**32.
func New(u uint64, opts ...Option) (*Tree, error) {
	width, ok := universeWidth(u)
	if !ok {
		return nil, &InvalidUniverseError{Universe: u}
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Tree{
		root:     newNode(width, leafWidth(o.leafSize)),
		universe: u,
		leafSize: o.leafSize,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(u uint64, opts ...Option) *Tree {
	t, err := New(u, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) Universe() uint64 {
	return t.universe
}

func (t *Tree) LeafSize() uint64 {
	return t.leafSize
}

// Len returns the number of members.
func (t *Tree) Len() uint64 {
	if t == nil {
		return 0
	}
	return t.root.count
}

func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Find reports whether val is a member.
func (t *Tree) Find(val uint64) bool {
	if t == nil {
		return false
	}
	return t.root.find(val)
}

// Insert adds val to the set. It returns false if val was already a member.
// A value outside the universe yields an *OutOfRangeError and leaves the tree
// untouched.
func (t *Tree) Insert(val uint64) (bool, error) {
	if val >= t.universe {
		return false, &OutOfRangeError{Value: val, Universe: t.universe}
	}
	return t.root.insert(val), nil
}

// Delete removes val from the set. Deleting a non-member is a no-op that
// returns false.
func (t *Tree) Delete(val uint64) bool {
	if val >= t.universe {
		return false
	}
	return t.root.delete(val)
}

// Min returns the smallest member; ok is false if the tree is empty.
func (t *Tree) Min() (val uint64, ok bool) {
	if t.root.count == 0 {
		return 0, false
	}
	return t.root.min, true
}

// Max returns the largest member; ok is false if the tree is empty.
func (t *Tree) Max() (val uint64, ok bool) {
	if t.root.count == 0 {
		return 0, false
	}
	return t.root.max, true
}

// CloseAbove returns the successor of val: the smallest member strictly
// greater than val. val itself need not be a member.
func (t *Tree) CloseAbove(val uint64) (uint64, bool) {
	return t.root.closeAbove(val)
}

// CloseBelow returns the predecessor of val: the largest member strictly
// less than val. val itself need not be a member.
func (t *Tree) CloseBelow(val uint64) (uint64, bool) {
	return t.root.closeBelow(val)
}

// Clear removes all members.
func (t *Tree) Clear() {
	t.root.reset()
}

func (t *Tree) String() string {
	if t.IsEmpty() {
		return fmt.Sprintf("veb.Tree{u=%d, len=0}", t.universe)
	}
	return fmt.Sprintf("veb.Tree{u=%d, len=%d, min=%d, max=%d}", t.universe, t.root.count, t.root.min, t.root.max)
}
