package sdk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/xchain/types"
)

func TestUnimplementedChain(t *testing.T) {
	t.Parallel()

	chain := UnimplementedChain{Chain: types.Polkadot}
	require.Equal(t, types.Polkadot, chain.ID())

	tests := []struct {
		name   string
		call   func() error
		wantOp string
	}{
		{
			name: "ZeroHash",
			call: func() error {
				_, err := chain.ZeroHash()
				return err
			},
			wantOp: OpZeroHash,
		},
		{
			name: "HashBytes",
			call: func() error {
				_, err := chain.HashBytes([]byte("data"))
				return err
			},
			wantOp: OpHashBytes,
		},
		{
			name: "RecoverAddress",
			call: func() error {
				_, err := chain.RecoverAddress([]byte("data"), types.Signature{})
				return err
			},
			wantOp: OpRecover,
		},
		{
			name: "SignMessage",
			call: func() error {
				_, err := chain.SignMessage([]byte("data"))
				return err
			},
			wantOp: OpSign,
		},
		{
			name: "ParseAddress",
			call: func() error {
				_, err := chain.ParseAddress("0x00")
				return err
			},
			wantOp: OpParseAddress,
		},
		{
			name: "FormatAddress",
			call: func() error {
				_, err := chain.FormatAddress(types.Address{})
				return err
			},
			wantOp: OpFormatAddress,
		},
		{
			name: "SignerAddress",
			call: func() error {
				_, err := chain.SignerAddress()
				return err
			},
			wantOp: OpSignerAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.call()
			require.ErrorIs(t, err, types.ErrUnsupportedOperation)

			var opErr *types.UnsupportedOperationError
			require.ErrorAs(t, err, &opErr)
			require.Equal(t, types.Polkadot, opErr.Chain)
			require.Equal(t, tt.wantOp, opErr.Operation)
		})
	}
}

func TestStaticKeyIDs(t *testing.T) {
	t.Parallel()

	keys := StaticKeyIDs{types.Ethereum: "eth-key"}

	id, ok := keys.SigningKeyID(types.Ethereum)
	require.True(t, ok)
	require.Equal(t, KeyID("eth-key"), id)

	_, ok = keys.SigningKeyID(types.Solana)
	require.False(t, ok)
}
