package pool

import (
	"fmt"
	"os"

	"github.com/joshuapare/blockpool/internal/format"
)

// Runtime debug flag for allocation logging - controlled by POOL_LOG_ALLOC env var.
var logAlloc = os.Getenv("POOL_LOG_ALLOC") != ""

// Alloc selects a free block by best fit and returns its handle plus the
// payload slice aliasing the arena. need must be in (0, BlockSize()];
// anything else fails with ErrInvalidParam. An exhausted pool fails with
// ErrNoSpace. Failures never mutate the pool.
func (p *Pool) Alloc(need int) (Ref, []byte, error) {
	if p == nil || p.data == nil {
		return 0, nil, fmt.Errorf("%w: nil or destroyed pool", ErrInvalidParam)
	}
	p.stats.AllocCalls++

	if need <= 0 || need > int(p.blockSize) {
		p.stats.RejectedAllocs++
		return 0, nil, fmt.Errorf("%w: need=%d (valid range 1..%d)",
			ErrInvalidParam, need, p.blockSize)
	}

	idx, prev := p.findBestFit(int32(need))
	if idx == freeNone {
		p.stats.FailedAllocs++
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[POOL] EXHAUSTED: need=%d used=%d/%d\n",
				need, p.used, len(p.blocks))
		}
		return 0, nil, fmt.Errorf("%w: need=%d, %d/%d blocks in use",
			ErrNoSpace, need, p.used, len(p.blocks))
	}

	p.unlinkFree(idx, prev)
	b := &p.blocks[idx]
	b.allocated = true
	b.next = freeNone
	p.writeHeader(int(idx), format.StateLive)
	p.used++
	if int(p.used) > p.stats.PeakUsed {
		p.stats.PeakUsed = int(p.used)
	}

	ref := Ref(p.dataOff(int(idx)))
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[POOL] alloc need=%d block=%d ref=%d used=%d/%d\n",
			need, idx, ref, p.used, len(p.blocks))
	}
	return ref, p.payload(int(idx)), nil
}

// findBestFit scans the whole free list and returns the index of the
// smallest-capacity free block satisfying need, plus its predecessor on the
// list (freeNone when the winner is the head). First qualifying block in scan
// order wins ties. Returns freeNone when nothing fits.
func (p *Pool) findBestFit(need int32) (best, bestPrev int32) {
	best, bestPrev = freeNone, freeNone
	prev := freeNone
	for cur := p.freeHead; cur != freeNone; cur = p.blocks[cur].next {
		p.stats.ScanSteps++
		if c := p.blocks[cur].capacity; c >= need {
			if best == freeNone || c < p.blocks[best].capacity {
				best, bestPrev = cur, prev
			}
		}
		prev = cur
	}
	return best, bestPrev
}

// unlinkFree removes block idx from the free list given its predecessor.
func (p *Pool) unlinkFree(idx, prev int32) {
	if prev == freeNone {
		p.freeHead = p.blocks[idx].next
		return
	}
	p.blocks[prev].next = p.blocks[idx].next
}
