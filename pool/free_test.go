package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockpool/internal/format"
)

func TestFree_RoundTrip(t *testing.T) {
	p := newTestPool(t, 128, 8)

	// Each alloc immediately followed by its free returns usage to zero and
	// keeps every invariant intact.
	for i := 0; i < 20; i++ {
		ref, buf, err := p.Alloc(100)
		require.NoError(t, err, "iteration %d", i)
		require.NotNil(t, buf)
		assert.Equal(t, 1, p.Usage())
		assertInvariants(t, p)

		require.NoError(t, p.Free(ref))
		assert.Equal(t, 0, p.Usage())
		assertInvariants(t, p)
	}
}

func TestFree_DoubleFree(t *testing.T) {
	p := newTestPool(t, 32, 2)

	ref, _, err := p.Alloc(16)
	require.NoError(t, err)

	require.NoError(t, p.Free(ref))
	assert.Equal(t, 0, p.Usage())

	// The second free on the same ref is corruption, not a no-op.
	err = p.Free(ref)
	require.ErrorIs(t, err, ErrCorrupted)
	assert.Equal(t, 0, p.Usage(), "double free must not mutate")
	assertInvariants(t, p)
}

func TestFree_ForeignRefs(t *testing.T) {
	p := newTestPool(t, 32, 3)

	ref, _, err := p.Alloc(16)
	require.NoError(t, err)

	cases := []struct {
		name string
		ref  Ref
	}{
		{"zero ref", 0},
		{"past arena end", Ref(p.ArenaSize())},
		{"far past arena end", Ref(p.ArenaSize()) + 4096},
		{"mid-payload offset", ref + 4},
		{"header offset", ref - format.BlockHeaderSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, p.Free(tc.ref), ErrInvalidParam)
			assert.Equal(t, 1, p.Usage(), "rejected free must not mutate")
		})
	}

	require.NoError(t, p.Free(ref))
	assertInvariants(t, p)
}

func TestFree_ReusesFreedBlock(t *testing.T) {
	p := newTestPool(t, 32, 3)

	var refs []Ref
	for n := 0; n < 3; n++ {
		ref, _, err := p.Alloc(16)
		require.NoError(t, err)
		refs = append(refs, ref)
	}
	require.True(t, p.IsFull())

	require.NoError(t, p.Free(refs[0]))
	assert.Equal(t, 2, p.Usage())

	// The just-freed slot is the only candidate and must come back.
	ref, _, err := p.Alloc(16)
	require.NoError(t, err)
	assert.Equal(t, refs[0], ref)
	assertInvariants(t, p)
}
