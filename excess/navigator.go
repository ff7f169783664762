package excess

import "math/bits"

// Navigation over the implicit complete binary tree. Every method is pure
// index arithmetic bounded by the node count; none of them look at the
// aggregates.

// Parent returns (idx-1)/2. The root and indices outside the tree have no
// parent.
func (t *Tree) Parent(idx int) (int, bool) {
	if idx <= 0 || idx >= len(t.nodes) {
		return 0, false
	}
	return (idx - 1) / 2, true
}

// LeftChild returns 2idx+1 if that node exists.
func (t *Tree) LeftChild(idx int) (int, bool) {
	c := 2*idx + 1
	if idx < 0 || c >= len(t.nodes) {
		return 0, false
	}
	return c, true
}

// RightChild returns 2idx+2 if that node exists.
func (t *Tree) RightChild(idx int) (int, bool) {
	c := 2*idx + 2
	if idx < 0 || c >= len(t.nodes) {
		return 0, false
	}
	return c, true
}

// IsLeftChild reports whether idx is, or would be if it existed, a left
// child.
func (t *Tree) IsLeftChild(idx int) bool {
	return idx%2 == 1
}

// LeftSibling returns idx-1 for a right child inside the tree.
func (t *Tree) LeftSibling(idx int) (int, bool) {
	if idx < 2 || idx >= len(t.nodes) || idx%2 != 0 {
		return 0, false
	}
	return idx - 1, true
}

// RightSibling returns idx+1 for a left child whose sibling is inside the
// tree.
func (t *Tree) RightSibling(idx int) (int, bool) {
	if idx < 1 || idx%2 != 1 || idx+1 >= len(t.nodes) {
		return 0, false
	}
	return idx + 1, true
}

// FirstLeaf returns the index of the first leaf, which is also the number of
// internal nodes. It is 0 for an empty tree.
func (t *Tree) FirstLeaf() int { return t.firstLeaf }

// IsLeaf reports whether idx is on the leaf level. Hollow internal nodes
// have no children but are not leaves.
func (t *Tree) IsLeaf(idx int) bool {
	return len(t.nodes) != 0 && idx >= t.firstLeaf
}

// LeafNode returns the node index of block leaf, if the block exists.
func (t *Tree) LeafNode(leaf int) (int, bool) {
	if leaf < 0 || leaf >= t.LeafCount() {
		return 0, false
	}
	return t.firstLeaf + leaf, true
}

// hollow reports whether idx has no realized leaf beneath it. An internal
// node is realized exactly when its leftmost leaf slot is, and that slot is
// found by shifting idx+1 down to the leaf level.
func (t *Tree) hollow(idx int) bool {
	if idx >= len(t.nodes) {
		return true
	}
	if idx >= t.firstLeaf {
		return false
	}
	depth := bits.Len(uint(idx+1)) - 1
	leftmost := (idx+1)<<(t.leafDepth-depth) - 1
	return leftmost >= len(t.nodes)
}
