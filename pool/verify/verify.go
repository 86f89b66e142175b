// Package verify provides validation functions over raw pool arena bytes.
// These helpers are used in tests to ensure arena invariants are maintained
// independent of the pool's own bookkeeping.
package verify

import (
	"fmt"

	"github.com/joshuapare/blockpool/internal/format"
)

// ValidationError describes a single arena invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates every arena invariant in one call: overall size,
// the header grid, and the allocated count. Returns the first error
// encountered, or nil if all checks pass.
func AllInvariants(data []byte, blockSize, numBlocks, wantUsed int) error {
	if err := ArenaSize(data, blockSize, numBlocks); err != nil {
		return err
	}
	if err := HeaderGrid(data, blockSize, numBlocks); err != nil {
		return err
	}
	return UsedCount(data, blockSize, numBlocks, wantUsed)
}

// ArenaSize validates that data is exactly the footprint of numBlocks blocks
// of the given (aligned) blockSize.
func ArenaSize(data []byte, blockSize, numBlocks int) error {
	want := format.Stride(format.Align8(blockSize)) * numBlocks
	if len(data) != want {
		return &ValidationError{
			Type:    "ArenaSize",
			Message: fmt.Sprintf("arena is %d bytes, layout requires %d", len(data), want),
			Offset:  -1,
		}
	}
	return nil
}

// HeaderGrid validates every block header: the index word must equal the
// block's arena-order position and the state word must be one of the two
// defined states.
func HeaderGrid(data []byte, blockSize, numBlocks int) error {
	stride := format.Stride(format.Align8(blockSize))
	for i := 0; i < numBlocks; i++ {
		off := format.HeaderOffset(i, stride)
		state := format.U32LE(data[off+format.StateWordOffset:])
		index := format.U32LE(data[off+format.IndexWordOffset:])

		if index != uint32(i) {
			return &ValidationError{
				Type:    "HeaderGrid",
				Message: fmt.Sprintf("block %d index word is %d", i, index),
				Offset:  off + format.IndexWordOffset,
			}
		}
		if state != format.StateFree && state != format.StateLive {
			return &ValidationError{
				Type:    "HeaderGrid",
				Message: fmt.Sprintf("block %d state word is 0x%08X", i, state),
				Offset:  off + format.StateWordOffset,
			}
		}
	}
	return nil
}

// UsedCount validates that exactly wantUsed headers carry the live state.
func UsedCount(data []byte, blockSize, numBlocks, wantUsed int) error {
	stride := format.Stride(format.Align8(blockSize))
	live := 0
	for i := 0; i < numBlocks; i++ {
		off := format.HeaderOffset(i, stride)
		if format.U32LE(data[off+format.StateWordOffset:]) == format.StateLive {
			live++
		}
	}
	if live != wantUsed {
		return &ValidationError{
			Type:    "UsedCount",
			Message: fmt.Sprintf("counted %d live header(s), expected %d", live, wantUsed),
			Offset:  -1,
		}
	}
	return nil
}
