package bitvec

/*

# Bit vectors for balanced parenthesis sequences

This package provides the minimal bit storage the excess tree is built over:
a packed, LSB0 numbered bit vector with random access by position.

A set bit is an "open" parenthesis and a clear bit is a "close". So the
sequence

	( ( ) ( ) )

is stored as

	1 1 0 1 0 0

and its running excess, measured after each symbol, is

	1 2 1 2 1 0

The vector is appended to or set while it is being populated. Once handed to
excess.Build it must not change; nothing here enforces that, the burden is on
the caller.

## Storage

Bits are held in a github.com/bits-and-blooms/bitset, so bit i lives in word
i >> 6 at position i & 63, least significant bit first. The bitset grows on
Set; BitVec keeps the logical length itself.

*/
