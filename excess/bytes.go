package excess

import "encoding/binary"

func readU64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
func readI64BE(b []byte) int64  { return int64(binary.BigEndian.Uint64(b)) }

func writeU64BE(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
func writeI64BE(dst []byte, v int64)  { binary.BigEndian.PutUint64(dst, uint64(v)) }
