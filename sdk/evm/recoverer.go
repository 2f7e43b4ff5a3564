package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.Recoverer = ECDSARecoverer{}

// ECDSARecoverer recovers secp256k1 signers with go-ethereum.
type ECDSARecoverer struct{}

// Recover returns the 20 byte address that produced signature over message. With prefixed
// set the message is hashed as an EIP-191 personal message, otherwise with plain Keccak-256.
func (ECDSARecoverer) Recover(message []byte, signature []byte, prefixed bool) ([]byte, error) {
	if len(signature) != types.SignatureBytesLength {
		return nil, fmt.Errorf("invalid signature length: %d", len(signature))
	}

	var hash []byte
	if prefixed {
		hash = accounts.TextHash(message)
	} else {
		hash = crypto.Keccak256(message)
	}

	pubKey, err := crypto.SigToPub(hash, toRecoveryID(signature))
	if err != nil {
		return nil, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey).Bytes(), nil
}
