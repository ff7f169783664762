package excess

import (
	"math"

	"github.com/fxamacker/cbor/v2"
)

// maxCBORNodes is the largest aggregate array UnmarshalCBOR accepts, the
// ceiling the decoder allows. The library default of 131072 is reached by a
// one megabit sequence in blocks of 8.
const maxCBORNodes = math.MaxInt32

// treeCBOR is the CBOR shape of a tree: an integer keyed map holding the two
// shape parameters and the flat aggregate array.
type treeCBOR struct {
	BlockSize uint64          `cbor:"1,keyasint"`
	BitLen    uint64          `cbor:"2,keyasint"`
	Nodes     []aggregateCBOR `cbor:"3,keyasint"`
}

type aggregateCBOR struct {
	_     struct{} `cbor:",toarray"`
	Total int64
	Min   int64
	Max   int64
}

// MarshalCBOR encodes t using core deterministic encoding.
func (t *Tree) MarshalCBOR() ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}

	v := treeCBOR{
		BlockSize: uint64(t.blockSize),
		BitLen:    uint64(t.bitLen),
		Nodes:     make([]aggregateCBOR, len(t.nodes)),
	}
	for i, a := range t.nodes {
		v.Nodes[i] = aggregateCBOR{Total: a.Total, Min: a.Min, Max: a.Max}
	}
	return em.Marshal(v)
}

// UnmarshalCBOR replaces t with the tree encoded in data. The shape is
// checked exactly as DecodeV1 checks it.
func (t *Tree) UnmarshalCBOR(data []byte) error {
	dm, err := cbor.DecOptions{MaxArrayElements: maxCBORNodes}.DecMode()
	if err != nil {
		return err
	}

	var v treeCBOR
	if err := dm.Unmarshal(data, &v); err != nil {
		return err
	}

	nodes := make([]Aggregate, len(v.Nodes))
	for i, a := range v.Nodes {
		nodes[i] = Aggregate{Total: a.Total, Min: a.Min, Max: a.Max}
	}
	restored, err := restore(nodes, v.BlockSize, v.BitLen)
	if err != nil {
		return err
	}
	*t = *restored
	return nil
}
