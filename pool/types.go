package pool

// Ref is an opaque block handle: the uint32 byte offset of the block's data
// region within the pool arena. The zero Ref never names a valid block (the
// first data region starts past the first header).
type Ref = uint32

// block is the bookkeeping record for one arena slot. Records live in arena
// order, so the slice doubles as the all-blocks index for validation.
type block struct {
	// next links the free list: index of the next free block, or freeNone.
	// The field serves only the free list; allocated blocks carry freeNone.
	next int32

	// capacity is the aligned usable size of the data region. Uniform across
	// a pool today, but kept per block so best-fit has real sizes to compare.
	capacity int32

	// allocated is true between a successful Alloc and its matching Free.
	allocated bool
}

// freeNone is the free-list terminator / not-on-list marker.
const freeNone int32 = -1
