package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/blockpool/internal/format"
)

// Free releases the block named by ref and pushes it to the free-list front.
//
// ref must be a value previously returned by Alloc on this pool and not yet
// freed. Recovery is stride-checked: a ref outside the arena or not on a
// data-region boundary fails with ErrInvalidParam; a block that is already
// free, or whose on-arena header no longer matches the bookkeeping, fails
// with ErrCorrupted. Failures never mutate the pool.
func (p *Pool) Free(ref Ref) error {
	if p == nil || p.data == nil {
		return fmt.Errorf("%w: nil or destroyed pool", ErrInvalidParam)
	}
	p.stats.FreeCalls++

	idx, err := p.blockFor(ref)
	if err != nil {
		return err
	}

	state, hdrIdx := p.readHeader(idx)
	if hdrIdx != uint32(idx) {
		return fmt.Errorf("%w: block %d header index word is %d", ErrCorrupted, idx, hdrIdx)
	}
	b := &p.blocks[idx]
	if !b.allocated || state == format.StateFree {
		return fmt.Errorf("%w: double free of block %d (ref=%d)", ErrCorrupted, idx, ref)
	}
	if state != format.StateLive {
		return fmt.Errorf("%w: block %d header state word is 0x%08X", ErrCorrupted, idx, state)
	}

	b.allocated = false
	b.next = p.freeHead
	p.freeHead = int32(idx)
	p.writeHeader(idx, format.StateFree)
	p.used--

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] free block=%d ref=%d used=%d/%d\n",
			idx, ref, p.used, len(p.blocks))
	}
	return nil
}

// blockFor maps a data-region ref back to its owning block index. The header
// precedes the data region by format.BlockHeaderSize, so a valid ref sits
// exactly one header past a stride boundary inside the arena.
func (p *Pool) blockFor(ref Ref) (int, error) {
	off := int64(ref)
	base := off - format.BlockHeaderSize
	if base < 0 || off >= int64(len(p.data)) {
		return 0, fmt.Errorf("%w: ref=%d outside arena (%d bytes)", ErrInvalidParam, ref, len(p.data))
	}
	if base%int64(p.stride) != 0 {
		return 0, fmt.Errorf("%w: ref=%d is not a block data offset", ErrInvalidParam, ref)
	}
	return int(base / int64(p.stride)), nil
}
