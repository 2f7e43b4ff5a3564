package sdk

import (
	"github.com/smartcontractkit/xchain/types"
)

// Operation names reported by UnsupportedOperationError.
const (
	OpZeroHash      = "zero_hash"
	OpHashBytes     = "hash_bytes"
	OpRecover       = "recover_address"
	OpSign          = "sign_message"
	OpParseAddress  = "parse_address"
	OpFormatAddress = "format_address"
	OpSignerAddress = "signer_address"
)

var _ Chain = UnimplementedChain{}

// UnimplementedChain is embedded by chains that have not been onboarded yet. Every operation
// fails with an UnsupportedOperationError.
type UnimplementedChain struct {
	Chain types.ChainID
}

func (u UnimplementedChain) ID() types.ChainID { return u.Chain }

func (u UnimplementedChain) ZeroHash() (types.Hash, error) {
	return types.Hash{}, types.NewUnsupportedOperationError(u.Chain, OpZeroHash)
}

func (u UnimplementedChain) HashBytes([]byte) (types.Hash, error) {
	return types.Hash{}, types.NewUnsupportedOperationError(u.Chain, OpHashBytes)
}

func (u UnimplementedChain) RecoverAddress([]byte, types.Signature) (types.Address, error) {
	return types.Address{}, types.NewUnsupportedOperationError(u.Chain, OpRecover)
}

func (u UnimplementedChain) SignMessage([]byte) (types.Signature, error) {
	return types.Signature{}, types.NewUnsupportedOperationError(u.Chain, OpSign)
}

func (u UnimplementedChain) ParseAddress(string) (types.Address, error) {
	return types.Address{}, types.NewUnsupportedOperationError(u.Chain, OpParseAddress)
}

func (u UnimplementedChain) FormatAddress(types.Address) (string, error) {
	return "", types.NewUnsupportedOperationError(u.Chain, OpFormatAddress)
}

func (u UnimplementedChain) SignerAddress() (types.Address, error) {
	return types.Address{}, types.NewUnsupportedOperationError(u.Chain, OpSignerAddress)
}
