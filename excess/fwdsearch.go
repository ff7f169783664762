package excess

import "fmt"

// FwdSearch finds the first block after begin that holds a position whose
// excess, relative to the excess at the end of block begin, is x.
//
// On success it returns the block index and x re-expressed relative to the
// start of that block, ready for the in-block scan. ok is false when no block
// to the right qualifies, when begin is not a block of the tree, or when the
// tree is empty.
//
// begin itself is never returned, the caller is expected to have scanned it
// already. No two positions differ in excess by more than BitLen(), so any x
// beyond that is absent without a walk.
func (t *Tree) FwdSearch(begin int, x int64) (leaf int, rel int64, ok bool) {
	node, ok := t.LeafNode(begin)
	if !ok || !t.reachable(x) {
		return 0, 0, false
	}

	// Ascend. x stays relative to the end of the subtree rooted at node.
	for node != 0 {
		parent := (node - 1) / 2
		if !t.IsLeftChild(node) {
			node = parent
			continue
		}

		sib, ok := t.RightSibling(node)
		if !ok || t.hollow(sib) {
			// Nothing is realized further right.
			return 0, 0, false
		}
		if t.nodes[sib].Contains(x) {
			node, x = t.fwdDescend(sib, x)
			return node - t.firstLeaf, x, true
		}

		x -= t.nodes[sib].Total
		node = parent
	}
	return 0, 0, false
}

// fwdDescend walks down from node, known to contain x relative to its start,
// to the leftmost leaf that does.
func (t *Tree) fwdDescend(node int, x int64) (int, int64) {
	for !t.IsLeaf(node) {
		l, ok := t.LeftChild(node)
		if !ok {
			panic(fmt.Errorf("%w: fwd descent reached childless node %d (x=%d)", ErrBrokenInvariant, node, x))
		}
		if t.nodes[l].Contains(x) {
			node = l
			continue
		}

		x -= t.nodes[l].Total
		r, ok := t.RightChild(node)
		if !ok || !t.nodes[r].Contains(x) {
			panic(fmt.Errorf("%w: fwd descent from node %d found no child containing x", ErrBrokenInvariant, node))
		}
		node = r
	}
	return node, x
}

// reachable reports whether x is within BitLen() of zero. Rebasing x during
// an ascent cannot overflow once this holds.
func (t *Tree) reachable(x int64) bool {
	n := int64(t.bitLen)
	return -n <= x && x <= n
}
