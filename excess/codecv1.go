package excess

import (
	"bytes"
	"fmt"
)

// V1 layout, all integers big-endian:
//
//	+------------------------------+  32B header
//	| magic "EXT1" | version | pad |  0..8
//	| blockSize  u64               |  8..16
//	| bitLen     u64               |  16..24
//	| nodeCount  u64               |  24..32
//	+------------------------------+  nodeCount * 24B
//	| total i64 | min i64 | max i64|
//	| ...                          |
//	+------------------------------+
//
// nodeCount is redundant given blockSize and bitLen. It is kept so the
// region size can be checked before the aggregates are read.

// TreeBytesV1 returns the region size needed to encode nodeCount aggregates.
func TreeBytesV1(nodeCount uint64) uint64 {
	return HeaderBytesV1 + nodeCount*AggregateBytesV1
}

// EncodeV1 writes t into dst, which must be at least TreeBytesV1(t.Len())
// bytes.
func EncodeV1(dst []byte, t *Tree) error {
	if uint64(len(dst)) < TreeBytesV1(uint64(len(t.nodes))) {
		return ErrBadRegionSize
	}

	copy(dst[0:4], []byte(MagicV1))
	dst[4] = VersionV1
	clear(dst[5:8])
	writeU64BE(dst[8:16], uint64(t.blockSize))
	writeU64BE(dst[16:24], uint64(t.bitLen))
	writeU64BE(dst[24:32], uint64(len(t.nodes)))

	off := HeaderBytesV1
	for _, a := range t.nodes {
		writeI64BE(dst[off:off+8], a.Total)
		writeI64BE(dst[off+8:off+16], a.Min)
		writeI64BE(dst[off+16:off+24], a.Max)
		off += AggregateBytesV1
	}
	return nil
}

// DecodeV1 reads a tree written by EncodeV1.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeV1(src []byte) (t *Tree, ok bool, err error) {
	if len(src) < HeaderBytesV1 {
		return nil, false, ErrBadRegionSize
	}
	if bytes.Equal(src[0:4], []byte{0, 0, 0, 0}) {
		return nil, false, nil
	}
	if string(src[0:4]) != MagicV1 {
		return nil, false, ErrBadMagic
	}
	if src[4] != VersionV1 {
		return nil, false, ErrBadVersion
	}

	blockSize := readU64BE(src[8:16])
	bitLen := readU64BE(src[16:24])
	nodeCount := readU64BE(src[24:32])

	if nodeCount > (uint64(len(src))-HeaderBytesV1)/AggregateBytesV1 {
		return nil, false, fmt.Errorf("%w: %d nodes in %d bytes", ErrBadRegionSize, nodeCount, len(src))
	}

	nodes := make([]Aggregate, nodeCount)
	off := HeaderBytesV1
	for i := range nodes {
		nodes[i] = Aggregate{
			Total: readI64BE(src[off : off+8]),
			Min:   readI64BE(src[off+8 : off+16]),
			Max:   readI64BE(src[off+16 : off+24]),
		}
		off += AggregateBytesV1
	}

	t, err = restore(nodes, blockSize, bitLen)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}
