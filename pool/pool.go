package pool

import (
	"fmt"

	"github.com/joshuapare/blockpool/internal/arena"
	"github.com/joshuapare/blockpool/internal/format"
)

// Pool is a fixed-block allocator over one contiguous arena. All blocks share
// one capacity, chosen (and aligned) at creation. The zero value is not
// usable; construct with New.
type Pool struct {
	data    []byte       // the arena; len(data) == stride * total
	release func() error // returns the arena to the host

	blocks   []block // bookkeeping records, arena order
	freeHead int32   // head of the free list, freeNone when full

	blockSize int32 // aligned per-block capacity
	stride    int32 // format.BlockHeaderSize + blockSize
	used      int32 // blocks currently allocated

	stats opStats
}

// New creates a pool of numBlocks blocks, each with blockSize usable bytes
// (rounded up to 8-byte alignment). Creation is all-or-nothing: on any
// failure no arena is retained.
//
// Zero or negative inputs fail with ErrInvalidParam; a pool too large for
// uint32 handles fails with ErrInvalidParam; a host reservation failure
// wraps ErrArena.
func New(blockSize, numBlocks int) (*Pool, error) {
	if blockSize <= 0 || numBlocks <= 0 {
		return nil, fmt.Errorf("%w: blockSize=%d numBlocks=%d (both must be > 0)",
			ErrInvalidParam, blockSize, numBlocks)
	}

	aligned := format.Align8(blockSize)
	stride := format.Stride(aligned)
	total := int64(stride) * int64(numBlocks)
	if total > format.MaxArenaSize {
		return nil, fmt.Errorf("%w: arena would need %d bytes (max %d)",
			ErrInvalidParam, total, int64(format.MaxArenaSize))
	}

	data, release, err := arena.Reserve(int(total))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArena, err)
	}

	p := &Pool{
		data:      data,
		release:   release,
		blocks:    make([]block, numBlocks),
		freeHead:  freeNone,
		blockSize: int32(aligned),
		stride:    int32(stride),
	}

	// Initialize every block free and push it to the free-list front, so the
	// initial scan order is reverse arena order.
	for i := 0; i < numBlocks; i++ {
		p.writeHeader(i, format.StateFree)
		p.blocks[i] = block{
			next:     p.freeHead,
			capacity: int32(aligned),
		}
		p.freeHead = int32(i)
	}

	return p, nil
}

// Destroy releases the arena and poisons the pool. It fails with ErrCorrupted
// and mutates nothing while allocations are outstanding; the pool remains
// usable and the caller must Free every live block first.
func (p *Pool) Destroy() error {
	if p == nil || p.data == nil {
		return fmt.Errorf("%w: nil or destroyed pool", ErrInvalidParam)
	}
	if p.used != 0 {
		return fmt.Errorf("%w: destroy with %d allocation(s) outstanding", ErrCorrupted, p.used)
	}
	err := p.release()
	p.data = nil
	p.release = nil
	p.blocks = nil
	p.freeHead = freeNone
	if err != nil {
		return fmt.Errorf("%w: release arena: %v", ErrArena, err)
	}
	return nil
}

// Usage returns the number of blocks currently allocated. 0 for a nil or
// destroyed pool.
func (p *Pool) Usage() int {
	if p == nil || p.data == nil {
		return 0
	}
	return int(p.used)
}

// Capacity returns the total number of blocks. 0 for a nil or destroyed pool.
func (p *Pool) Capacity() int {
	if p == nil || p.data == nil {
		return 0
	}
	return len(p.blocks)
}

// BlockSize returns the aligned per-block capacity in bytes. 0 for a nil or
// destroyed pool.
func (p *Pool) BlockSize() int {
	if p == nil || p.data == nil {
		return 0
	}
	return int(p.blockSize)
}

// ArenaSize returns the total arena footprint in bytes, headers included.
// 0 for a nil or destroyed pool.
func (p *Pool) ArenaSize() int {
	if p == nil || p.data == nil {
		return 0
	}
	return len(p.data)
}

// IsFull reports whether no block is free. True for a nil or destroyed pool,
// the conservative answer for a pool that cannot serve an allocation.
func (p *Pool) IsFull() bool {
	if p == nil || p.data == nil {
		return true
	}
	return p.used == int32(len(p.blocks))
}

// IsEmpty reports whether no block is allocated. True for a nil or destroyed
// pool.
func (p *Pool) IsEmpty() bool {
	if p == nil || p.data == nil {
		return true
	}
	return p.used == 0
}

// Bytes returns the live arena for inspection by verification tooling. The
// slice aliases pool memory; callers must not retain it across Destroy.
// nil for a nil or destroyed pool.
func (p *Pool) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.data
}

// headerOff returns the arena offset of block i's header.
func (p *Pool) headerOff(i int) int {
	return format.HeaderOffset(i, int(p.stride))
}

// dataOff returns the arena offset of block i's data region.
func (p *Pool) dataOff(i int) int {
	return format.DataOffset(i, int(p.stride))
}

// writeHeader stamps block i's on-arena header with the given state word and
// the block's own index.
func (p *Pool) writeHeader(i int, state uint32) {
	off := p.headerOff(i)
	format.PutU32LE(p.data[off+format.StateWordOffset:], state)
	format.PutU32LE(p.data[off+format.IndexWordOffset:], uint32(i))
}

// readHeader returns block i's on-arena state and index words.
func (p *Pool) readHeader(i int) (state, index uint32) {
	off := p.headerOff(i)
	state = format.U32LE(p.data[off+format.StateWordOffset:])
	index = format.U32LE(p.data[off+format.IndexWordOffset:])
	return state, index
}

// payload returns block i's data region as a capacity-bounded slice.
func (p *Pool) payload(i int) []byte {
	off := p.dataOff(i)
	end := off + int(p.blocks[i].capacity)
	return p.data[off:end:end]
}
