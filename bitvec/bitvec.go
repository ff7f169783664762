package bitvec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var ErrBadParen = errors.New("bitvec: parenthesis string contains an invalid rune")

// BitVec is a packed sequence of bits. The zero value is an empty vector
// ready for Append.
//
// The logical length is tracked separately from the bitset, whose own length
// is a capacity that only grows as bits are set.
type BitVec struct {
	set *bitset.BitSet
	n   int
}

// New returns a vector of n clear bits (n closes).
func New(n int) *BitVec {
	return &BitVec{
		set: bitset.New(uint(n)),
		n:   n,
	}
}

// FromBits packs bits, treating any non zero entry as an open.
func FromBits(bits []uint8) *BitVec {
	v := New(len(bits))
	for i, b := range bits {
		if b != 0 {
			v.set.Set(uint(i))
		}
	}
	return v
}

// FromParens parses a string of '(' and ')' runes.
func FromParens(s string) (*BitVec, error) {
	v := &BitVec{}
	for i, r := range s {
		switch r {
		case '(':
			v.Append(true)
		case ')':
			v.Append(false)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadParen, r, i)
		}
	}
	return v, nil
}

// Len returns the number of bits in the vector.
func (v *BitVec) Len() int { return v.n }

// Bit reports whether bit i is set. i must be in [0, Len()).
func (v *BitVec) Bit(i int) bool {
	return v.set.Test(uint(i))
}

// Set assigns bit i. i must be in [0, Len()).
func (v *BitVec) Set(i int, open bool) {
	v.set.SetTo(uint(i), open)
}

// Append adds one bit to the end of the vector.
func (v *BitVec) Append(open bool) {
	if v.set == nil {
		v.set = bitset.New(0)
	}
	v.n++
	v.set.SetTo(uint(v.n-1), open)
}

// Count returns the number of opens.
func (v *BitVec) Count() int {
	if v.set == nil {
		return 0
	}
	return int(v.set.Count())
}

// Excess returns the running excess after the first i symbols. It is a
// linear scan, intended for reference checks rather than hot paths.
func (v *BitVec) Excess(i int) int64 {
	var e int64
	for j := 0; j < i; j++ {
		if v.Bit(j) {
			e++
		} else {
			e--
		}
	}
	return e
}

// String renders the vector as parentheses.
func (v *BitVec) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) {
			sb.WriteByte('(')
		} else {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
