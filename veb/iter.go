package veb

// Ascend calls fn for every member >= from in increasing order.
// It returns whether all such members were visited: fn can continue the
// process by returning true or abort with false.
func (t *Tree) Ascend(from uint64, fn func(uint64) bool) bool {
	val, ok := from, t.Find(from)
	if !ok {
		val, ok = t.CloseAbove(from)
	}

	for ; ok; val, ok = t.CloseAbove(val) {
		if !fn(val) {
			return false
		}
	}

	return true
}

// Descend calls fn for every member <= from in decreasing order.
// It returns whether all such members were visited.
func (t *Tree) Descend(from uint64, fn func(uint64) bool) bool {
	val, ok := from, t.Find(from)
	if !ok {
		val, ok = t.CloseBelow(from)
	}

	for ; ok; val, ok = t.CloseBelow(val) {
		if !fn(val) {
			return false
		}
	}

	return true
}

// Each calls fn for all members in increasing order.
func (t *Tree) Each(fn func(uint64) bool) bool {
	return t.Ascend(0, fn)
}

// Keys returns all members in increasing order.
func (t *Tree) Keys() []uint64 {
	keys := make([]uint64, 0, t.Len())

	t.Each(func(val uint64) bool {
		keys = append(keys, val)
		return true
	})

	return keys
}
