package excess

import (
	"testing"

	"github.com/forestrie/go-bptree/bitvec"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func requireSameTree(t *testing.T, want, got *Tree) {
	t.Helper()
	require.Equal(t, want.BlockSize(), got.BlockSize())
	require.Equal(t, want.BitLen(), got.BitLen())
	require.Equal(t, want.FirstLeaf(), got.FirstLeaf())
	require.Equal(t, want.leafDepth, got.leafDepth)
	if diff := cmp.Diff(want.nodes, got.nodes); diff != "" {
		t.Fatalf("aggregates mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecV1RoundTrip(t *testing.T) {
	tree := Build(threeBlockBits(), 8)

	region := make([]byte, TreeBytesV1(uint64(tree.Len())))
	require.Equal(t, HeaderBytesV1+6*AggregateBytesV1, len(region))
	require.NoError(t, EncodeV1(region, tree))
	require.Equal(t, MagicV1, string(region[0:4]))

	got, ok, err := DecodeV1(region)
	require.NoError(t, err)
	require.True(t, ok)
	requireSameTree(t, tree, got)

	// a decoded tree answers searches without the bits
	leaf, rel, ok := got.FwdSearch(0, -2)
	require.True(t, ok)
	wantLeaf, wantRel, _ := tree.FwdSearch(0, -2)
	require.Equal(t, wantLeaf, leaf)
	require.Equal(t, wantRel, rel)
}

func TestCodecV1EmptyTree(t *testing.T) {
	tree := Build(bitvec.New(0), 16)
	region := make([]byte, TreeBytesV1(0))
	require.NoError(t, EncodeV1(region, tree))

	got, ok, err := DecodeV1(region)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, got.Len())
	require.Equal(t, 16, got.BlockSize())
}

func TestCodecV1Rejects(t *testing.T) {
	tree := Build(threeBlockBits(), 8)
	good := make([]byte, TreeBytesV1(uint64(tree.Len())))
	require.NoError(t, EncodeV1(good, tree))

	fresh := func() []byte { return append([]byte(nil), good...) }

	// uninitialised region
	_, ok, err := DecodeV1(make([]byte, HeaderBytesV1))
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = DecodeV1(good[:HeaderBytesV1-1])
	require.ErrorIs(t, err, ErrBadRegionSize)

	_, _, err = DecodeV1(good[:len(good)-1])
	require.ErrorIs(t, err, ErrBadRegionSize)

	require.ErrorIs(t, EncodeV1(make([]byte, len(good)-1), tree), ErrBadRegionSize)

	b := fresh()
	copy(b[0:4], "EXT9")
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrBadMagic)

	b = fresh()
	b[4] = VersionV1 + 1
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrBadVersion)

	// 24 bits in blocks of 4 needs 13 nodes, not 6
	b = fresh()
	writeU64BE(b[8:16], 4)
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrNodeCountMismatch)

	b = fresh()
	writeU64BE(b[8:16], 0)
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrBadBlockSize)

	// root max below its total
	b = fresh()
	writeI64BE(b[HeaderBytesV1+16:HeaderBytesV1+24], -1)
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrBadAggregate)

	// leaf 0 claims more depth than 8 bits can reach
	b = fresh()
	off := HeaderBytesV1 + 3*AggregateBytesV1
	writeI64BE(b[off+16:off+24], 9)
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrBadAggregate)

	// node 2 copies its only child, a wider min is still ordered but wrong
	b = fresh()
	off = HeaderBytesV1 + 2*AggregateBytesV1
	writeI64BE(b[off+8:off+16], -10)
	_, _, err = DecodeV1(b)
	require.ErrorIs(t, err, ErrInconsistentAggregate)
}

func TestCodecV1RejectsNonZeroHollowNode(t *testing.T) {
	tree := Build(bitvec.FromBits([]uint8{1, 0, 1, 0, 1, 0}), 1)
	require.True(t, tree.hollow(6))

	region := make([]byte, TreeBytesV1(uint64(tree.Len())))
	require.NoError(t, EncodeV1(region, tree))
	off := HeaderBytesV1 + 6*AggregateBytesV1
	writeI64BE(region[off:off+8], 1)
	writeI64BE(region[off+8:off+16], 1)
	writeI64BE(region[off+16:off+24], 1)

	_, _, err := DecodeV1(region)
	require.ErrorIs(t, err, ErrInconsistentAggregate)
}

func TestCBORRoundTrip(t *testing.T) {
	for _, bv := range randomBits(t, 5005, 10, 300) {
		tree := Build(bv, 7)

		data, err := cbor.Marshal(tree)
		require.NoError(t, err)

		var got Tree
		require.NoError(t, cbor.Unmarshal(data, &got))
		requireSameTree(t, tree, &got)
	}
}

func TestCBORRoundTripLargeTree(t *testing.T) {
	// more aggregates than the decoder's default array limit
	tree := Build(bitvec.New(1<<20), 8)
	require.Greater(t, tree.Len(), 131072)

	data, err := tree.MarshalCBOR()
	require.NoError(t, err)

	var got Tree
	require.NoError(t, got.UnmarshalCBOR(data))
	requireSameTree(t, tree, &got)
}

func TestCBORDeterministic(t *testing.T) {
	a, err := Build(threeBlockBits(), 8).MarshalCBOR()
	require.NoError(t, err)
	b, err := Build(threeBlockBits(), 8, WithParallelism(4)).MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCBORRejectsInconsistentShape(t *testing.T) {
	data, err := cbor.Marshal(treeCBOR{
		BlockSize: 8,
		BitLen:    24,
		Nodes:     []aggregateCBOR{{Total: 1, Min: 1, Max: 1}},
	})
	require.NoError(t, err)

	var got Tree
	require.ErrorIs(t, got.UnmarshalCBOR(data), ErrNodeCountMismatch)
}

func TestCBORRejectsInconsistentAggregate(t *testing.T) {
	tree := Build(threeBlockBits(), 8)
	v := treeCBOR{BlockSize: 8, BitLen: 24}
	for _, a := range tree.nodes {
		v.Nodes = append(v.Nodes, aggregateCBOR{Total: a.Total, Min: a.Min, Max: a.Max})
	}
	// the root min is ordered but lower than its children allow
	v.Nodes[0].Min = -1

	data, err := cbor.Marshal(v)
	require.NoError(t, err)

	var got Tree
	require.ErrorIs(t, got.UnmarshalCBOR(data), ErrInconsistentAggregate)
}
