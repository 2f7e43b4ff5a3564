package solana

import (
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.Chain = (*Chain)(nil)

// Chain is a placeholder for Solana. Ed25519 signing and base58 addresses are not onboarded,
// so every operation returns an UnsupportedOperationError.
type Chain struct {
	sdk.UnimplementedChain
}

func NewChain() *Chain {
	return &Chain{UnimplementedChain: sdk.UnimplementedChain{Chain: types.Solana}}
}
