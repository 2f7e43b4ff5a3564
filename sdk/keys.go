package sdk

import (
	"github.com/smartcontractkit/xchain/types"
)

var _ KeyIDSource = StaticKeyIDs(nil)

// StaticKeyIDs is a fixed KeyIDSource.
type StaticKeyIDs map[types.ChainID]KeyID

func (s StaticKeyIDs) SigningKeyID(chain types.ChainID) (KeyID, bool) {
	id, ok := s[chain]
	return id, ok
}
