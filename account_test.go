package xchain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/xchain/types"
)

func TestChainAccount_Compare(t *testing.T) {
	t.Parallel()

	accounts := []ChainAccount{
		NewChainAccount(types.Solana, types.Address{0x01}),
		NewChainAccount(types.Ethereum, types.Address{0x02}),
		NewChainAccount(types.Ethereum, types.Address{0x01}),
		NewChainAccount(types.Compound, types.Address{0xff}),
	}
	slices.SortFunc(accounts, ChainAccount.Compare)

	assert.Equal(t, []ChainAccount{
		NewChainAccount(types.Compound, types.Address{0xff}),
		NewChainAccount(types.Ethereum, types.Address{0x01}),
		NewChainAccount(types.Ethereum, types.Address{0x02}),
		NewChainAccount(types.Solana, types.Address{0x01}),
	}, accounts)
}

func TestChainAccount_Equality(t *testing.T) {
	t.Parallel()

	// Same bytes on different chains are different accounts.
	assert.NotEqual(t, NewChainAccount(types.Ethereum, addr22), NewChainAccount(types.Tezos, addr22))
	assert.Equal(t, NewChainAccount(types.Ethereum, addr22), NewChainAccount(types.Ethereum, addr22))
	assert.True(t, NewChainAsset(types.Ethereum, addr22) == NewChainAsset(types.Ethereum, addr22))
	assert.Equal(t, 1, NewChainAsset(types.Tezos, addr22).Compare(NewChainAsset(types.Ethereum, addr22)))
}

func TestNewChainAssetAccount(t *testing.T) {
	t.Parallel()

	asset := NewChainAsset(types.Ethereum, types.Address{0xaa})
	holder := NewChainAccount(types.Ethereum, types.Address{0xbb})

	got, err := NewChainAssetAccount(asset, holder)
	require.NoError(t, err)
	assert.Equal(t, types.Ethereum, got.ChainID())
	assert.Equal(t, asset, got.ChainAsset())
	assert.Equal(t, holder, got.ChainAccount())

	_, err = NewChainAssetAccount(asset, NewChainAccount(types.Solana, types.Address{0xbb}))
	require.EqualError(t, err, "chain mismatch: expected ETH, got SOL")
	require.ErrorIs(t, err, types.ErrChainMismatch)
}

func TestCashAsset(t *testing.T) {
	t.Parallel()

	assert.True(t, NewCash().IsCash())
	assert.Equal(t, CashAsset{}, NewCash())

	asset := NewCashAsset(NewChainAsset(types.Ethereum, addr22))
	assert.False(t, asset.IsCash())
	assert.Equal(t, types.Ethereum, asset.Asset.ChainID())
}

func TestChainHash_String(t *testing.T) {
	t.Parallel()

	h := ChainHash{Chain: types.Ethereum, Hash: types.Hash{0x01}}
	assert.Equal(t, "ETH:0x0100000000000000000000000000000000000000000000000000000000000000", h.String())
	assert.Equal(t, types.Ethereum, h.ChainID())
}
