package format

import "encoding/binary"

// Endian-safe helpers for the two header words. Reads return 0 when the
// slice is too short rather than panicking, so corruption scans can run over
// truncated buffers.

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU32LE writes a little-endian uint32 to b. No-op when b is too short.
func PutU32LE(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}
