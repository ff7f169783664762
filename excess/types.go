package excess

import "errors"

// Bits is the bit sequence a tree is built from. A set bit is an open
// parenthesis. The sequence must not change while Build runs.
type Bits interface {
	Len() int
	Bit(i int) bool
}

const (
	// AggregateBytesV1 is the fixed width of one serialized aggregate.
	AggregateBytesV1 = 24

	// HeaderBytesV1 is the fixed width of the V1 tree header.
	HeaderBytesV1 = 32

	MagicV1         = "EXT1"
	VersionV1 uint8 = 1
)

var (
	// ErrBrokenInvariant is the panic value wrapped when a search reaches a
	// state the construction rules make impossible.
	ErrBrokenInvariant = errors.New("excess: tree invariant broken")

	ErrBadRegionSize     = errors.New("excess: region buffer too small")
	ErrBadMagic          = errors.New("excess: header magic invalid")
	ErrBadVersion        = errors.New("excess: header version invalid")
	ErrBadBlockSize      = errors.New("excess: block size invalid")
	ErrNodeCountMismatch = errors.New("excess: node count does not match block size and bit length")
	ErrBadAggregate      = errors.New("excess: aggregate violates min <= total <= max")

	// ErrInconsistentAggregate reports a restored internal node that does not
	// summarise its children.
	ErrInconsistentAggregate = errors.New("excess: aggregate does not match its children")
)
