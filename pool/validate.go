package pool

import (
	"fmt"

	"github.com/joshuapare/blockpool/internal/format"
)

// Validate walks every block record independent of the free list and
// cross-checks the pool's counters and on-arena headers. Read-only; it never
// mutates, and it returns ErrCorrupted on the first inconsistency found:
//
//   - a data region that would extend past the arena
//   - a header state or index word that disagrees with the bookkeeping
//   - a recomputed block or allocated count that disagrees with the counters
//   - a free list that skips, repeats, or visits an allocated block
func (p *Pool) Validate() error {
	if p == nil || p.data == nil {
		return fmt.Errorf("%w: nil or destroyed pool", ErrInvalidParam)
	}

	allocated := 0
	for i := range p.blocks {
		b := &p.blocks[i]

		end := p.dataOff(i) + int(b.capacity)
		if end > len(p.data) {
			return fmt.Errorf("%w: block %d data region ends at %d, arena is %d bytes",
				ErrCorrupted, i, end, len(p.data))
		}

		state, hdrIdx := p.readHeader(i)
		if hdrIdx != uint32(i) {
			return fmt.Errorf("%w: block %d header index word is %d", ErrCorrupted, i, hdrIdx)
		}
		want := format.StateFree
		if b.allocated {
			want = format.StateLive
		}
		if state != want {
			return fmt.Errorf("%w: block %d header state word is 0x%08X (want 0x%08X)",
				ErrCorrupted, i, state, want)
		}

		if b.allocated {
			allocated++
		}
	}

	if allocated != int(p.used) {
		return fmt.Errorf("%w: counted %d allocated block(s), pool records %d",
			ErrCorrupted, allocated, p.used)
	}

	// The free list must hold exactly the unallocated blocks, each once.
	onList := 0
	for cur := p.freeHead; cur != freeNone; cur = p.blocks[cur].next {
		if cur < 0 || int(cur) >= len(p.blocks) {
			return fmt.Errorf("%w: free list links to block %d of %d", ErrCorrupted, cur, len(p.blocks))
		}
		if p.blocks[cur].allocated {
			return fmt.Errorf("%w: free list visits allocated block %d", ErrCorrupted, cur)
		}
		onList++
		if onList > len(p.blocks) {
			return fmt.Errorf("%w: free list cycle", ErrCorrupted)
		}
	}
	if wantFree := len(p.blocks) - int(p.used); onList != wantFree {
		return fmt.Errorf("%w: free list holds %d block(s), expected %d", ErrCorrupted, onList, wantFree)
	}

	return nil
}
