package excess

import "math/bits"

// NextPow2 returns the smallest power of two >= n. NextPow2(0) is 1.
func NextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

// IsPow2 determines if n is a perfect power of 2.
func IsPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2Uint64 efficiently computes floor(log2(num)). num must be > 0.
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// internalCount returns I = max(1, nextPow2(leaves) - 1).
func internalCount(leaves uint64) uint64 {
	return max(1, NextPow2(leaves)-1)
}

// NodeCount returns the array size N for a tree over bitLen bits with the
// given block size. It is 0 for an empty sequence. blockSize must be > 0.
func NodeCount(bitLen, blockSize uint64) uint64 {
	if bitLen == 0 {
		return 0
	}
	leaves := (bitLen + blockSize - 1) / blockSize
	return internalCount(leaves) + leaves
}

// FirstLeafIndex recovers the index of the first leaf from the node count
// alone. n must be >= 2 (any non empty tree).
//
// For n == 2 there is a single leaf under the root. Otherwise the leaves make
// up more than half of the array, so ceil(n/2) rounded up to a power of two
// is the width of the leaf level, and the internal nodes above it number one
// less than that.
func FirstLeafIndex(n int) int {
	if n == 2 {
		return 1
	}
	half := uint64(n+1) / 2
	return int(NextPow2(half) - 1)
}
