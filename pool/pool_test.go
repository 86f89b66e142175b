package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockpool/internal/format"
)

func TestNew_RejectsZeroInputs(t *testing.T) {
	cases := []struct {
		name                 string
		blockSize, numBlocks int
	}{
		{"zero block size", 0, 4},
		{"zero block count", 32, 0},
		{"both zero", 0, 0},
		{"negative block size", -8, 4},
		{"negative block count", 32, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.blockSize, tc.numBlocks)
			require.ErrorIs(t, err, ErrInvalidParam)
			assert.Nil(t, p)
		})
	}
}

func TestNew_RejectsOversizedArena(t *testing.T) {
	// Footprint would exceed the uint32 handle range.
	p, err := New(format.MaxArenaSize, 2)
	require.ErrorIs(t, err, ErrInvalidParam)
	assert.Nil(t, p)
}

func TestNew_ThenValidate(t *testing.T) {
	p := newTestPool(t, 32, 3)

	assert.Equal(t, 0, p.Usage())
	assert.Equal(t, 3, p.Capacity())
	assert.Equal(t, 32, p.BlockSize())
	assert.Equal(t, 3*(format.BlockHeaderSize+32), p.ArenaSize())
	assert.False(t, p.IsFull())
	assert.True(t, p.IsEmpty())
	assertInvariants(t, p)
}

func TestNew_AlignsBlockSize(t *testing.T) {
	p := newTestPool(t, 30, 2)

	// 30 rounds up to 32; every payload carries the aligned capacity.
	assert.Equal(t, 32, p.BlockSize())
	_, buf, err := p.Alloc(30)
	require.NoError(t, err)
	assert.Len(t, buf, 32)
	assertInvariants(t, p)
}

func TestAccessors_NilPool(t *testing.T) {
	var p *Pool
	assert.Equal(t, 0, p.Usage())
	assert.Equal(t, 0, p.Capacity())
	assert.Equal(t, 0, p.BlockSize())
	assert.Equal(t, 0, p.ArenaSize())
	assert.True(t, p.IsFull())
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Bytes())

	_, _, err := p.Alloc(8)
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.ErrorIs(t, p.Free(Ref(8)), ErrInvalidParam)
	assert.ErrorIs(t, p.Validate(), ErrInvalidParam)
	assert.ErrorIs(t, p.Destroy(), ErrInvalidParam)
}

func TestDestroy_Empty(t *testing.T) {
	p, err := New(64, 4)
	require.NoError(t, err)
	require.NoError(t, p.Destroy())

	// The pool is poisoned afterwards.
	assert.Equal(t, 0, p.Capacity())
	assert.True(t, p.IsFull())
	_, _, err = p.Alloc(8)
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.ErrorIs(t, p.Destroy(), ErrInvalidParam)
}

func TestDestroy_WithOutstandingAllocations(t *testing.T) {
	p, err := New(64, 4)
	require.NoError(t, err)

	ref, _, err := p.Alloc(16)
	require.NoError(t, err)

	// Destroy must refuse and leave the pool usable.
	require.ErrorIs(t, p.Destroy(), ErrCorrupted)
	assert.Equal(t, 1, p.Usage())
	assertInvariants(t, p)

	// Releasing the block unblocks destruction.
	require.NoError(t, p.Free(ref))
	require.NoError(t, p.Destroy())
}
