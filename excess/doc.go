package excess

/*

# Excess min-max trees

This package provides the range min-max tree used by succinct balanced
parenthesis tree representations (Navarro & Sadakane, "Fully Functional
Static and Dynamic Succinct Trees"). Matching parenthesis, enclosing pair and
subtree boundary queries all reduce to two primitives:

  - FwdSearch: the nearest block to the right of a block holding a position
    with a given excess.
  - BwdSearch: the same, to the left.

Both only locate the block. Resolving the exact bit inside it is a linear scan
left to the caller.

It follows the "functional primitives" style of go-merklelog/mmr:

  - a flat array, no linked nodes
  - index arithmetic for every relationship
  - a burden of knowledge on the caller for hot paths

## Excess

Reading an open as +1 and a close as -1, the excess at a position is the
running sum up to and including it.

	bits     1 1 1 0 0 1 1 1 | 0 1 0 1 1 1 0 0 | 1 0 0 1 0 0 0 0
	excess   1 2 3 2 1 2 3 4 | 3 4 3 4 5 6 5 4 | 5 4 3 4 3 2 1 0

Each block is summarised by an Aggregate (Total, Min, Max), measured relative
to the excess at the block's left edge and evaluated after each symbol:

	block 0  (4, 1, 4)
	block 1  (0,-1, 2)
	block 2 (-4,-4, 1)

## Layout

The leaf count L is rounded up to a power of two to size a complete binary
tree of I = max(1, nextPow2(L)-1) internal nodes. Leaves that would pad the
last level are never materialised, so the array has exactly I + L entries.
For six blocks:

	            0
	         /     \
	       1         2
	      / \       / \
	     3   4     5    6
	    / \ / \   / \
	   7  8 9 10 11 12  -  -

	leaves:  7 .. 12  (blocks 0 .. 5)

Node 6 is hollow: it has an index but no realized leaf below it. Its
aggregate stays zero and the searches never descend into it.

The usual heap arithmetic navigates the array:

	parent(i)      = (i-1)/2
	leftChild(i)   = 2i+1
	rightChild(i)  = 2i+2

## Combining

Every prefix of a right child is offset by the whole of its left sibling, so
for a node with children l and r:

	total = l.total + r.total
	min   = min(l.min, l.total + r.min)
	max   = max(l.max, l.total + r.max)

A node with only a left child copies it verbatim.

## Relative excess

The searches carry the target excess as an offset from a moving reference
point, and re-base it every time they step over a subtree. Forward search
starts relative to the *end* of the begin block and ascends; each right
sibling it skips moves the reference point to that sibling's end, so its
Total is subtracted. Backward search starts relative to the *start* of the
begin block; each left sibling it skips moves the reference point to that
sibling's start, so its Total is added.

Because Min and Max are taken after each symbol, the excess at a block's very
left edge is not represented in the block's own aggregate. Backward search
therefore also accepts a subtree whenever the re-based target is exactly zero
relative to its start. Forward search has no counterpart rule; its left edge
values belong to the preceding block.

*/
