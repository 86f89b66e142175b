// Package format defines the fixed on-arena layout of a block pool. The goal
// is to keep the layout math in one place, allocation-free, and independent
// from the public API so the pool package can stay focused on bookkeeping.
package format

const (
	// BlockHeaderSize is the number of bytes reserved in the arena ahead of
	// every block's data region. Layout (little-endian):
	//   0x00  u32  state word (StateFree or StateLive)
	//   0x04  u32  block index (position in arena order)
	BlockHeaderSize = 8

	// StateWordOffset and IndexWordOffset locate the two header words
	// relative to the block's header start.
	StateWordOffset = 0
	IndexWordOffset = 4

	// Alignment is the granularity block capacities are rounded up to.
	// Every data region starts BlockHeaderSize bytes past its header, so
	// keeping BlockHeaderSize a multiple of Alignment keeps data aligned too.
	Alignment = 8

	// AlignmentMask is Alignment - 1, used by the align helpers.
	AlignmentMask = Alignment - 1

	// MaxArenaSize is the largest arena a pool may reserve. Block handles
	// are uint32 offsets into the arena, so the arena cannot exceed 2^31-1
	// bytes.
	MaxArenaSize = 0x7FFFFFFF
)

const (
	// StateFree marks an unallocated block in its on-arena header.
	StateFree uint32 = 0x65657246 // "Free"

	// StateLive marks an allocated block in its on-arena header.
	StateLive uint32 = 0x6576694C // "Live"
)

// Stride returns the per-block footprint in the arena for an aligned block
// capacity: header plus data region.
func Stride(alignedBlockSize int) int {
	return BlockHeaderSize + alignedBlockSize
}

// HeaderOffset returns the arena offset of block i's header.
func HeaderOffset(i, stride int) int {
	return i * stride
}

// DataOffset returns the arena offset of block i's data region.
func DataOffset(i, stride int) int {
	return i*stride + BlockHeaderSize
}
