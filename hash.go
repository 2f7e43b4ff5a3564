package xchain

import (
	"github.com/smartcontractkit/xchain/types"
)

// ChainHash is a digest produced by a chain's hash function.
type ChainHash struct {
	Chain types.ChainID
	Hash  types.Hash
}

func (h ChainHash) ChainID() types.ChainID { return h.Chain }

func (h ChainHash) String() string {
	return h.Chain.String() + ":" + h.Hash.String()
}
