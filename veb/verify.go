package veb

import "fmt"

// Verify walks the whole tree and checks its structural invariants. It returns
// an error wrapping ErrInvariant for the first violation found.
//
// Verify visits every allocated node, so it is meant for tests and tooling
// rather than for the hot path.
func (t *Tree) Verify() error {
	return t.root.verify("root")
}

func (n *node) verify(path string) error {
	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s (u=2^%d): %s", ErrInvariant, path, n.width, fmt.Sprintf(format, args...))
	}

	limit := uint64(1) << n.width

	switch {
	case n.count == 0:
		if n.min != 0 || n.max != 0 {
			return fail("empty node caches min=%d max=%d", n.min, n.max)
		}
	case n.max >= limit:
		return fail("max %d is outside the universe", n.max)
	case n.count == 1 && n.min != n.max:
		return fail("single member but min %d != max %d", n.min, n.max)
	case n.count > 1 && n.min >= n.max:
		return fail("%d members but min %d >= max %d", n.count, n.min, n.max)
	}

	var inner uint64
	if n.count > 2 {
		inner = n.count - 2
	}

	if n.isLeaf() {
		return n.verifyLeaf(inner, fail)
	}
	return n.verifyInternal(path, inner, fail)
}

func (n *node) verifyLeaf(inner uint64, fail func(string, ...interface{}) error) error {
	if cnt := n.bitmap.count(); cnt != inner {
		return fail("bitmap holds %d values, want %d", cnt, inner)
	}
	if inner == 0 {
		return nil
	}

	first, _ := n.bitmap.first()
	last, _ := n.bitmap.last()

	if first <= n.min || last >= n.max {
		return fail("bitmap range [%d, %d] is not strictly inside (%d, %d)", first, last, n.min, n.max)
	}

	return nil
}

func (n *node) verifyInternal(path string, inner uint64, fail func(string, ...interface{}) error) error {
	var total, nonEmpty uint64

	for i, c := range n.cluster {
		if c == nil {
			if n.summary != nil && n.summary.find(uint64(i)) {
				return fail("summary lists missing cluster %d", i)
			}
			continue
		}

		if c.count == 0 {
			return fail("empty cluster %d is still allocated", i)
		}
		if n.summary == nil || !n.summary.find(uint64(i)) {
			return fail("summary misses non-empty cluster %d", i)
		}
		if err := c.verify(fmt.Sprintf("%s/cluster[%d]", path, i)); err != nil {
			return err
		}

		total += c.count
		nonEmpty++
	}

	if total != inner {
		return fail("clusters hold %d values, want %d", total, inner)
	}

	if n.summary == nil {
		return nil
	}

	if n.summary.count == 0 {
		return fail("empty summary is still allocated")
	}
	if n.summary.count != nonEmpty {
		return fail("summary holds %d indices for %d non-empty clusters", n.summary.count, nonEmpty)
	}
	if err := n.summary.verify(path + "/summary"); err != nil {
		return err
	}

	lo, hi := n.lowest(), n.highest()

	if lo <= n.min || hi >= n.max {
		return fail("clusters range [%d, %d] is not strictly inside (%d, %d)", lo, hi, n.min, n.max)
	}

	return nil
}
