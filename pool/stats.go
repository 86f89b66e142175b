package pool

import (
	"fmt"
	"io"
)

// opStats holds internal operation counters.
type opStats struct {
	AllocCalls     int   // Total Alloc() calls
	RejectedAllocs int   // Allocs rejected for a bad request size
	FailedAllocs   int   // Allocs that found no free block
	FreeCalls      int   // Total Free() calls
	ScanSteps      int64 // Free-list nodes visited by best-fit scans
	PeakUsed       int   // High-water mark of blocks in use
}

// Stats is a point-in-time snapshot of pool state and operation counters.
type Stats struct {
	TotalBlocks int     // Blocks in the pool
	UsedBlocks  int     // Blocks currently allocated
	FreeBlocks  int     // Blocks currently free
	BlockSize   int     // Aligned per-block capacity (bytes)
	ArenaBytes  int     // Total arena footprint, headers included
	Utilization float64 // UsedBlocks / TotalBlocks (0.0-1.0)

	AllocCalls     int   // Total Alloc() calls
	RejectedAllocs int   // Allocs rejected for a bad request size
	FailedAllocs   int   // Allocs that found no free block
	FreeCalls      int   // Total Free() calls
	ScanSteps      int64 // Free-list nodes visited by best-fit scans
	PeakUsed       int   // High-water mark of blocks in use
}

// Stats returns a snapshot of pool statistics. The zero Stats for a nil or
// destroyed pool.
func (p *Pool) Stats() Stats {
	if p == nil || p.data == nil {
		return Stats{}
	}
	total := len(p.blocks)
	used := int(p.used)
	s := Stats{
		TotalBlocks: total,
		UsedBlocks:  used,
		FreeBlocks:  total - used,
		BlockSize:   int(p.blockSize),
		ArenaBytes:  len(p.data),

		AllocCalls:     p.stats.AllocCalls,
		RejectedAllocs: p.stats.RejectedAllocs,
		FailedAllocs:   p.stats.FailedAllocs,
		FreeCalls:      p.stats.FreeCalls,
		ScanSteps:      p.stats.ScanSteps,
		PeakUsed:       p.stats.PeakUsed,
	}
	if total > 0 {
		s.Utilization = float64(used) / float64(total)
	}
	return s
}

// DumpStats writes a human-readable statistics report to w. Observational
// only; intended for operator-facing logging, not programmatic consumption.
func (p *Pool) DumpStats(w io.Writer) {
	if p == nil || p.data == nil {
		fmt.Fprintln(w, "Pool is nil or destroyed")
		return
	}
	s := p.Stats()
	fmt.Fprintln(w, "Pool Statistics:")
	fmt.Fprintf(w, "  Total blocks: %d\n", s.TotalBlocks)
	fmt.Fprintf(w, "  Used blocks: %d\n", s.UsedBlocks)
	fmt.Fprintf(w, "  Free blocks: %d\n", s.FreeBlocks)
	fmt.Fprintf(w, "  Block size: %d bytes\n", s.BlockSize)
	fmt.Fprintf(w, "  Total memory: %d bytes\n", s.ArenaBytes)
	fmt.Fprintf(w, "  Utilization: %.1f%%\n", s.Utilization*100)
	fmt.Fprintf(w, "  Alloc calls: %d (rejected %d, exhausted %d)\n",
		s.AllocCalls, s.RejectedAllocs, s.FailedAllocs)
	fmt.Fprintf(w, "  Free calls: %d\n", s.FreeCalls)
	fmt.Fprintf(w, "  Peak usage: %d blocks\n", s.PeakUsed)
}
