package polkadot

import (
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/xchain/types"
)

func TestChain_Unsupported(t *testing.T) {
	t.Parallel()

	chain := NewChain()
	assert.Equal(t, types.Polkadot, chain.ID())

	_, err := chain.HashBytes([]byte("data"))
	require.ErrorIs(t, err, types.ErrUnsupportedOperation)

	_, err = chain.ParseAddress("0x2222222222222222222222222222222222222222")
	require.ErrorIs(t, err, types.ErrUnsupportedOperation)

	_, err = chain.SignMessage([]byte("data"))
	require.ErrorIs(t, err, types.ErrUnsupportedOperation)
}

func TestEventID(t *testing.T) {
	t.Parallel()

	a := EventID{Block: 1, Index: 5}
	b := EventID{Block: 2, Index: 0}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	data, err := bin.MarshalBorsh(a)
	require.NoError(t, err)
	require.Len(t, data, 16)

	var got EventID
	require.NoError(t, bin.UnmarshalBorsh(&got, data))
	assert.Equal(t, a, got)
}
