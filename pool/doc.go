// Package pool implements a fixed-block memory pool over a single
// pre-reserved arena.
//
// # Overview
//
// A Pool owns one contiguous arena subdivided into N equal-capacity blocks,
// each prefixed by an 8-byte header. Allocation hands out whole blocks;
// release returns them. The pool never grows, never splits or coalesces
// blocks, and never moves data: every handle stays valid until its matching
// Free or the pool's Destroy.
//
// # Usage Example
//
//	p, err := pool.New(256, 64)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := p.Alloc(200)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//	copy(buf, payload)
//
//	// Later, release the block and tear the pool down.
//	if err := p.Free(ref); err != nil {
//	    return err
//	}
//	if err := p.Destroy(); err != nil {
//	    return err
//	}
//
// # Arena Layout
//
// Block capacities are rounded up to 8-byte alignment at creation. Each block
// occupies header + capacity bytes, packed back to back:
//
//	[hdr 0][data 0][hdr 1][data 1]...[hdr N-1][data N-1]
//
// The header carries a state word (free/live) and the block's index. Free and
// Validate check both, so a caller scribbling past its payload boundary is
// caught at the next release or validation pass rather than silently
// corrupting the pool.
//
// # Handles
//
// A Ref is the byte offset of a block's data region within the arena. Free
// recovers the owning block by bounds- and stride-checked arithmetic on the
// ref; a ref that is out of range or not on a data-region boundary is
// rejected with ErrInvalidParam before anything is touched.
//
// # Allocation Policy
//
// Alloc scans the entire free list and picks the smallest-capacity free block
// that satisfies the request (best fit). On ties the first qualifying block
// in scan order wins. All blocks in one pool share one capacity, so in
// practice this selects the most recently freed block, but the policy is
// implemented as true best-fit so the tie-break behavior holds if
// heterogeneous capacities are ever introduced.
//
// # Errors
//
// The four sentinel errors form a closed taxonomy:
//
//   - ErrInvalidParam: nil pool, bad request size, or a ref that maps to no block
//   - ErrCorrupted: double free, header damage, count mismatch, or destroy
//     with allocations outstanding
//   - ErrNoSpace: pool exhausted; free a block and retry
//   - ErrArena: the backing arena could not be reserved at creation
//
// Failures are always returned to the immediate caller and never mutate the
// pool. Errors carry detail via wrapping; match with errors.Is.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally; every operation, read accessors included, must be treated as a
// single critical section relative to the others.
//
// # Related Packages
//
//   - github.com/joshuapare/blockpool/pool/verify: invariant checks over raw arena bytes
//   - github.com/joshuapare/blockpool/internal/format: arena layout constants
//   - github.com/joshuapare/blockpool/internal/arena: host memory reservation
package pool
