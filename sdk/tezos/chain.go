package tezos

import (
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.Chain = (*Chain)(nil)

// Chain is a placeholder for Tezos.
type Chain struct {
	sdk.UnimplementedChain
}

func NewChain() *Chain {
	return &Chain{UnimplementedChain: sdk.UnimplementedChain{Chain: types.Tezos}}
}
