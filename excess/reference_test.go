package excess

import (
	"testing"

	"github.com/forestrie/go-bptree/bitvec"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// Linear reference answers the searches are checked against.

// prefixExcess returns E where E[k] is the excess after the first k symbols.
func prefixExcess(v *bitvec.BitVec) []int64 {
	e := make([]int64, v.Len()+1)
	for i := 0; i < v.Len(); i++ {
		if v.Bit(i) {
			e[i+1] = e[i] + 1
		} else {
			e[i+1] = e[i] - 1
		}
	}
	return e
}

// fwdReference scans right from the end of block begin for the first symbol
// after which the excess is e[end] + x. e is the prefixExcess of the sequence.
func fwdReference(e []int64, blockSize, begin int, x int64) (int, int64, bool) {
	m := len(e) - 1
	end := min((begin+1)*blockSize, m)
	target := e[end] + x
	for k := end + 1; k <= m; k++ {
		if e[k] == target {
			leaf := (k - 1) / blockSize
			return leaf, target - e[leaf*blockSize], true
		}
	}
	return 0, 0, false
}

// bwdReference scans left from the start of block begin for the nearest
// boundary whose excess is e[start] + x. A boundary on a block edge is
// credited to the block on its right, unless that is begin itself.
func bwdReference(e []int64, blockSize, begin int, x int64) (int, int64, bool) {
	start := begin * blockSize
	target := e[start] + x
	for k := start; k >= 0; k-- {
		if e[k] != target {
			continue
		}
		leaf := min(k/blockSize, begin-1)
		if leaf < 0 {
			return 0, 0, false
		}
		return leaf, target - e[(leaf+1)*blockSize], true
	}
	return 0, 0, false
}

// randomBits returns count random sequences of length in [1, maxLen].
func randomBits(t *testing.T, seed int64, count, maxLen int) []*bitvec.BitVec {
	t.Helper()
	f := fuzz.NewWithSeed(seed).NilChance(0).NumElements(1, maxLen)
	out := make([]*bitvec.BitVec, 0, count)
	for range count {
		var opens []bool
		f.Fuzz(&opens)
		require.NotEmpty(t, opens)
		v := &bitvec.BitVec{}
		for _, o := range opens {
			v.Append(o)
		}
		out = append(out, v)
	}
	return out
}

// threeBlockBits is a balanced sequence of three blocks of 8.
func threeBlockBits() *bitvec.BitVec {
	return bitvec.FromBits([]uint8{
		1, 1, 1, 0, 0, 1, 1, 1,
		0, 1, 0, 1, 1, 1, 0, 0,
		1, 0, 0, 1, 0, 0, 0, 0,
	})
}

func mustParens(t *testing.T, s string) *bitvec.BitVec {
	t.Helper()
	v, err := bitvec.FromParens(s)
	require.NoError(t, err)
	return v
}
