package excess

import "fmt"

// restore re-creates a tree from a previously built aggregate array and the
// two parameters that fix its shape. nodes is adopted, not copied.
//
// Leaves are checked against their block length and every internal node is
// re-derived from its children, so a tree that restores cleanly never trips
// ErrBrokenInvariant during a search.
func restore(nodes []Aggregate, blockSize, bitLen uint64) (*Tree, error) {
	if blockSize == 0 || blockSize > uint64(maxInt) || bitLen > uint64(maxInt) {
		return nil, fmt.Errorf("%w: blockSize=%d, bitLen=%d", ErrBadBlockSize, blockSize, bitLen)
	}
	want := NodeCount(bitLen, blockSize)
	if uint64(len(nodes)) != want {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrNodeCountMismatch, len(nodes), want)
	}

	t := newShape(int(bitLen), int(blockSize))
	t.nodes = nodes

	for i, a := range nodes {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: node %d %+v", ErrBadAggregate, i, a)
		}
	}
	for leaf := 0; leaf < t.LeafCount(); leaf++ {
		start := leaf * t.blockSize
		n := int64(min(start+t.blockSize, t.bitLen) - start)
		a := nodes[t.firstLeaf+leaf]
		if a.Min < -n || a.Max > n {
			return nil, fmt.Errorf("%w: leaf %d %+v exceeds block length %d", ErrBadAggregate, leaf, a, n)
		}
	}
	for i := t.firstLeaf - 1; i >= 0; i-- {
		if d := t.derived(i); nodes[i] != d {
			return nil, fmt.Errorf("%w: node %d is %+v, children give %+v", ErrInconsistentAggregate, i, nodes[i], d)
		}
	}
	return t, nil
}

const maxInt = int(^uint(0) >> 1)
