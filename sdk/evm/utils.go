package evm

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/xchain/types"
)

const (
	SignatureVOffset    = 27
	SignatureVThreshold = 2
)

// toRecoveryID returns a copy of sig whose V is 0 or 1, as crypto.SigToPub expects.
func toRecoveryID(sig []byte) []byte {
	out := make([]byte, len(sig))
	copy(out, sig)
	if out[types.SignatureBytesLength-1] >= SignatureVOffset {
		out[types.SignatureBytesLength-1] -= SignatureVOffset
	}

	return out
}

// toEthereumV returns a copy of sig whose V is 27 or 28.
func toEthereumV(sig []byte) []byte {
	out := make([]byte, len(sig))
	copy(out, sig)
	if out[types.SignatureBytesLength-1] < SignatureVThreshold {
		out[types.SignatureBytesLength-1] += SignatureVOffset
	}

	return out
}

// PublicKeyToAddress derives an address from an uncompressed public key: the low 20 bytes of
// its Keccak-256 hash.
func PublicKeyToAddress(pub types.PublicKey) types.Address {
	var addr types.Address
	copy(addr[:], crypto.Keccak256(pub[:])[12:])

	return addr
}
