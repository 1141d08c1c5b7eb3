package veb

// node covers a universe of 2**width values. Exactly one of bitmap (leaf mode)
// or cluster (internal mode) is non-nil, fixed at construction.
//
// min and max are meaningful only while count > 0 and are never stored in the
// substructure, which holds exactly the members strictly between them.
type node struct {
	width     uint8
	leafWidth uint8
	count     uint64
	min       uint64
	max       uint64

	bitmap leaf

	summary *node   // indices of the non-empty clusters
	cluster []*node // nil entries are empty clusters
}

func newNode(width, leafWidth uint8) *node {
	var n = &node{
		width:     width,
		leafWidth: leafWidth,
	}

	if width <= leafWidth {
		n.bitmap = newLeaf(width)
	} else {
		n.cluster = make([]*node, uint64(1)<<n.half())
	}

	return n
}

func (n *node) isLeaf() bool {
	return n.bitmap != nil
}

// half is the width of both the cluster index and the value stored in a cluster.
// Internal widths are powers of two greater than one, so it divides evenly.
func (n *node) half() uint8 {
	return n.width >> 1
}

func (n *node) child() *node {
	return newNode(n.half(), n.leafWidth)
}

func (n *node) find(v uint64) bool {
	if n.count == 0 || v < n.min || v > n.max {
		return false
	}
	if v == n.min || v == n.max {
		return true
	}
	if n.isLeaf() {
		return n.bitmap.has(v)
	}

	half := n.half()
	c := n.cluster[high(v, half)]

	return c != nil && c.find(low(v, half))
}

// insert adds v and reports whether it was absent.
func (n *node) insert(v uint64) bool {
	switch {
	case n.count == 0:
		n.min, n.max, n.count = v, v, 1
		return true
	case v == n.min || v == n.max:
		return false
	case n.count == 1:
		// the old value stays cached as the other extreme
		if v < n.min {
			n.min = v
		} else {
			n.max = v
		}
		n.count = 2
		return true
	case v < n.min:
		v, n.min = n.min, v // push the old min down instead
	case v > n.max:
		v, n.max = n.max, v // push the old max down instead
	}

	if !n.push(v) {
		return false
	}
	n.count++

	return true
}

// delete removes v and reports whether it was present.
func (n *node) delete(v uint64) bool {
	if n.count == 0 || v < n.min || v > n.max {
		return false
	}

	switch n.count {
	case 1:
		// min == max == v, nothing below
		n.count, n.min, n.max = 0, 0, 0
		return true
	case 2:
		switch v {
		case n.min:
			n.min = n.max
		case n.max:
			n.max = n.min
		default:
			return false
		}
		n.count = 1
		return true
	}

	switch v {
	case n.min:
		n.min = n.lowest()
		n.pull(n.min)
	case n.max:
		n.max = n.highest()
		n.pull(n.max)
	default:
		if !n.pull(v) {
			return false
		}
	}
	n.count--

	return true
}

// push stores v in the substructure.
func (n *node) push(v uint64) bool {
	if n.isLeaf() {
		if n.bitmap.has(v) {
			return false
		}
		n.bitmap.set(v)
		return true
	}

	var (
		half = n.half()
		h    = high(v, half)
		c    = n.cluster[h]
	)

	if c == nil {
		c = n.child()
		n.cluster[h] = c
	}

	if c.count == 0 {
		// the cluster becomes non-empty
		if n.summary == nil {
			n.summary = n.child()
		}
		n.summary.insert(h)
	}

	return c.insert(low(v, half))
}

// pull removes v from the substructure.
func (n *node) pull(v uint64) bool {
	if n.isLeaf() {
		if !n.bitmap.has(v) {
			return false
		}
		n.bitmap.unset(v)
		return true
	}

	var (
		half = n.half()
		h    = high(v, half)
		c    = n.cluster[h]
	)

	if c == nil || !c.delete(low(v, half)) {
		return false
	}

	if c.count == 0 {
		// the cluster becomes empty
		n.cluster[h] = nil
		if n.summary.delete(h); n.summary.count == 0 {
			n.summary = nil
		}
	}

	return true
}

// lowest returns the smallest member of a non-empty substructure.
func (n *node) lowest() uint64 {
	if n.isLeaf() {
		v, _ := n.bitmap.first()
		return v
	}

	h := n.summary.min

	return join(h, n.cluster[h].min, n.half())
}

// highest returns the largest member of a non-empty substructure.
func (n *node) highest() uint64 {
	if n.isLeaf() {
		v, _ := n.bitmap.last()
		return v
	}

	h := n.summary.max

	return join(h, n.cluster[h].max, n.half())
}

// closeAbove returns the smallest member strictly greater than v.
func (n *node) closeAbove(v uint64) (uint64, bool) {
	if n.count == 0 || v >= n.max {
		return 0, false
	}
	if v < n.min {
		return n.min, true
	}

	// min <= v < max: the answer is in the substructure or it is max

	if n.isLeaf() {
		if next, ok := n.bitmap.next(v); ok {
			return next, true
		}
		return n.max, true
	}

	var (
		half = n.half()
		h    = high(v, half)
		l    = low(v, half)
	)

	if c := n.cluster[h]; c != nil && c.count > 0 && l < c.max {
		next, _ := c.closeAbove(l)
		return join(h, next, half), true
	}

	if n.summary != nil {
		if next, ok := n.summary.closeAbove(h); ok {
			return join(next, n.cluster[next].min, half), true
		}
	}

	return n.max, true
}

// closeBelow returns the largest member strictly less than v.
func (n *node) closeBelow(v uint64) (uint64, bool) {
	if n.count == 0 || v <= n.min {
		return 0, false
	}
	if v > n.max {
		return n.max, true
	}

	// min < v <= max: the answer is in the substructure or it is min

	if n.isLeaf() {
		if prev, ok := n.bitmap.prev(v); ok {
			return prev, true
		}
		return n.min, true
	}

	var (
		half = n.half()
		h    = high(v, half)
		l    = low(v, half)
	)

	if c := n.cluster[h]; c != nil && c.count > 0 && l > c.min {
		prev, _ := c.closeBelow(l)
		return join(h, prev, half), true
	}

	if n.summary != nil {
		if prev, ok := n.summary.closeBelow(h); ok {
			return join(prev, n.cluster[prev].max, half), true
		}
	}

	return n.min, true
}

// reset empties the node and releases its children.
func (n *node) reset() {
	n.count, n.min, n.max = 0, 0, 0

	if n.isLeaf() {
		for i := range n.bitmap {
			n.bitmap[i] = 0
		}
		return
	}

	n.summary = nil
	for i := range n.cluster {
		n.cluster[i] = nil
	}
}
