package excess

import "fmt"

// BwdSearch finds the nearest block before begin that holds a position whose
// excess, relative to the excess at the start of block begin, is x.
//
// On success it returns the block index and x re-expressed relative to the
// end of that block. ok is false when no block to the left qualifies, when
// begin is not a block of the tree, or when the tree is empty.
//
// Unlike FwdSearch, a block also qualifies when x lands exactly on its left
// edge, which its aggregate does not record. As there, x beyond BitLen() in
// either direction is absent.
func (t *Tree) BwdSearch(begin int, x int64) (leaf int, rel int64, ok bool) {
	node, ok := t.LeafNode(begin)
	if !ok || !t.reachable(x) {
		return 0, 0, false
	}

	// Ascend. x stays relative to the start of the subtree rooted at node.
	for node != 0 {
		parent := (node - 1) / 2
		if t.IsLeftChild(node) {
			node = parent
			continue
		}

		sib, ok := t.LeftSibling(node)
		if !ok {
			return 0, 0, false
		}
		if t.bwdContains(sib, x) {
			node, x = t.bwdDescend(sib, x)
			return node - t.firstLeaf, x, true
		}

		x += t.nodes[sib].Total
		node = parent
	}
	return 0, 0, false
}

// bwdContains reports whether the subtree at node holds x, given relative to
// the subtree's end. Re-based to the subtree's start that is x + Total, and
// zero there is the subtree's left edge.
func (t *Tree) bwdContains(node int, x int64) bool {
	fromStart := x + t.nodes[node].Total
	return fromStart == 0 || t.nodes[node].Contains(fromStart)
}

// bwdDescend walks down from node, known to contain x relative to its end,
// to the rightmost leaf that does.
func (t *Tree) bwdDescend(node int, x int64) (int, int64) {
	for !t.IsLeaf(node) {
		r, ok := t.RightChild(node)
		if ok && !t.hollow(r) {
			if t.bwdContains(r, x) {
				node = r
				continue
			}
			x += t.nodes[r].Total
		}

		l, ok := t.LeftChild(node)
		if !ok || !t.bwdContains(l, x) {
			panic(fmt.Errorf("%w: bwd descent from node %d found no child containing x", ErrBrokenInvariant, node))
		}
		node = l
	}
	return node, x
}
