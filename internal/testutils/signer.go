package testutils

import (
	"crypto/ecdsa"
	"encoding/hex"
	"slices"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/xchain/types"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() types.Address {
	return types.Address(crypto.PubkeyToAddress(s.Key.PublicKey))
}

// PublicKey returns the 64 byte uncompressed public key.
func (s *ECDSASigner) PublicKey() []byte {
	return crypto.FromECDSAPub(&s.Key.PublicKey)[1:]
}

func (s *ECDSASigner) PrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(s.Key))
}

// SignPersonal signs the EIP-191 hash of message and returns a signature with V in {27, 28}.
func (s *ECDSASigner) SignPersonal(message []byte) types.Signature {
	sig, err := crypto.Sign(accounts.TextHash(message), s.Key)
	if err != nil {
		panic(err)
	}
	sig[types.SignatureBytesLength-1] += 27

	return types.Signature(sig)
}

func MakeNewECDSASigners(n int) []ECDSASigner {
	signers := make([]ECDSASigner, n)
	for i := range n {
		signers[i] = *NewECDSASigner()
	}
	slices.SortFunc(signers[:], func(a, b ECDSASigner) int {
		return a.Address().Compare(b.Address())
	})

	return signers
}
