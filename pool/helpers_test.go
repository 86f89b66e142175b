package pool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockpool/pool/verify"
)

// newTestPool creates a pool and registers cleanup that drains any blocks the
// test left allocated so Destroy can succeed.
func newTestPool(t *testing.T, blockSize, numBlocks int) *Pool {
	t.Helper()
	p, err := New(blockSize, numBlocks)
	require.NoError(t, err)
	require.NotNil(t, p)
	t.Cleanup(func() {
		if p.data == nil {
			return // test destroyed it already
		}
		for i := range p.blocks {
			if p.blocks[i].allocated {
				require.NoError(t, p.Free(Ref(p.dataOff(i))))
			}
		}
		require.NoError(t, p.Destroy())
	})
	return p
}

// assertInvariants checks the pool's own Validate plus the arena-level
// invariants over the raw bytes.
func assertInvariants(t *testing.T, p *Pool) {
	t.Helper()
	require.NoError(t, p.Validate())
	require.NoError(t, verify.AllInvariants(p.Bytes(), p.BlockSize(), p.Capacity(), p.Usage()))
}
