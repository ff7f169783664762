package excess

import (
	"fmt"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// Tree is a range min-max tree over the excess of a parenthesis sequence.
// It is built once by Build and never modified, so any number of goroutines
// may search it concurrently.
type Tree struct {
	nodes []Aggregate

	// firstLeaf is also the internal node count I.
	firstLeaf int
	// leafDepth is the depth of the leaf level, the root being at depth 0.
	leafDepth int

	blockSize int
	bitLen    int
}

// Build constructs the tree for b, summarising each run of blockSize bits in
// one leaf. An empty sequence yields an empty tree.
//
// A blockSize < 1 is a programming error and panics.
func Build(b Bits, blockSize int, opts ...Option) *Tree {
	if blockSize < 1 {
		panic(fmt.Sprintf("%v: %d", ErrBadBlockSize, blockSize))
	}

	o := BuildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	t := newShape(b.Len(), blockSize)
	if t.bitLen == 0 {
		return t
	}
	t.nodes = make([]Aggregate, NodeCount(uint64(t.bitLen), uint64(blockSize)))

	t.scanLeaves(b, o.Workers)
	t.combineInternal()

	if o.Log != nil {
		o.Log.Debugf(
			"excess tree: bits=%d, blockSize=%d, leaves=%d, nodes=%d",
			t.bitLen, t.blockSize, t.LeafCount(), len(t.nodes))
	}
	return t
}

// newShape derives the layout parameters for bitLen bits. The caller
// provides the aggregate array. blockSize must be > 0.
func newShape(bitLen, blockSize int) *Tree {
	t := &Tree{
		blockSize: blockSize,
		bitLen:    bitLen,
	}
	if bitLen == 0 {
		return t
	}

	leaves := (bitLen + blockSize - 1) / blockSize
	internal := int(internalCount(uint64(leaves)))

	t.firstLeaf = internal
	t.leafDepth = int(Log2Uint64(uint64(internal) + 1))
	return t
}

func (t *Tree) scanLeaves(b Bits, workers int) {
	leaves := t.LeafCount()
	if workers <= 1 || leaves < 2 {
		t.scanLeafRange(b, 0, leaves)
		return
	}

	// Each goroutine owns a disjoint run of leaf slots.
	chunk := (leaves + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < leaves; lo += chunk {
		hi := min(lo+chunk, leaves)
		g.Go(func() error {
			t.scanLeafRange(b, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

func (t *Tree) scanLeafRange(b Bits, lo, hi int) {
	for leaf := lo; leaf < hi; leaf++ {
		start := leaf * t.blockSize
		end := min(start+t.blockSize, t.bitLen)
		t.nodes[t.firstLeaf+leaf] = BlockAggregate(b, start, end)
	}
}

// combineInternal fills the internal nodes from the leaves up. Each level
// occupies a contiguous index range above the next, so walking the indices
// downwards completes a level before any of its parents are visited.
func (t *Tree) combineInternal() {
	for i := t.firstLeaf - 1; i >= 0; i-- {
		t.nodes[i] = t.derived(i)
	}
}

// derived returns the aggregate internal node i must hold given its
// children. A node whose right child is missing or hollow copies its left.
func (t *Tree) derived(i int) Aggregate {
	if t.hollow(i) {
		return Aggregate{}
	}
	l, r := 2*i+1, 2*i+2
	if r >= len(t.nodes) || t.hollow(r) {
		return t.nodes[l]
	}
	return Combine(t.nodes[l], t.nodes[r])
}

// Len returns the number of nodes N, internal and leaf.
func (t *Tree) Len() int { return len(t.nodes) }

// LeafCount returns the number of blocks L.
func (t *Tree) LeafCount() int { return len(t.nodes) - t.firstLeaf }

func (t *Tree) BlockSize() int { return t.blockSize }
func (t *Tree) BitLen() int    { return t.bitLen }

// HeapSize returns the bytes held by the aggregate array.
func (t *Tree) HeapSize() int {
	return len(t.nodes) * int(unsafe.Sizeof(Aggregate{}))
}

// Node returns the aggregate at node index idx.
func (t *Tree) Node(idx int) Aggregate { return t.nodes[idx] }

func (t *Tree) TotalExcess(idx int) int64 { return t.nodes[idx].Total }
func (t *Tree) MinExcess(idx int) int64   { return t.nodes[idx].Min }
func (t *Tree) MaxExcess(idx int) int64   { return t.nodes[idx].Max }
