package compound

import (
	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.Chain = (*Chain)(nil)

// Chain is the Compound chain itself. It has no addresses or signatures of its own yet.
type Chain struct {
	sdk.UnimplementedChain
}

func NewChain() *Chain {
	return &Chain{UnimplementedChain: sdk.UnimplementedChain{Chain: types.Compound}}
}
