package evm

import (
	"crypto/ecdsa"
	"fmt"
	"maps"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/xchain/sdk"
)

var _ sdk.Keyring = (*PrivateKeyKeyring)(nil)

// PrivateKeyKeyring is an in-memory keyring over raw secp256k1 keys. It is meant for
// development tools and tests; production nodes plug in their own key custody.
type PrivateKeyKeyring struct {
	keys map[sdk.KeyID]*ecdsa.PrivateKey
}

// NewPrivateKeyKeyring creates a keyring holding keys. The map is copied.
func NewPrivateKeyKeyring(keys map[sdk.KeyID]*ecdsa.PrivateKey) *PrivateKeyKeyring {
	return &PrivateKeyKeyring{keys: maps.Clone(keys)}
}

// NewPrivateKeyKeyringFromHex creates a keyring with a single key parsed from hex.
func NewPrivateKeyKeyringFromHex(keyID sdk.KeyID, privateKeyHex string) (*PrivateKeyKeyring, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("could not parse ethereum private key: %w", err)
	}

	return NewPrivateKeyKeyring(map[sdk.KeyID]*ecdsa.PrivateKey{keyID: key}), nil
}

// PublicKey returns the 64 byte uncompressed public key of keyID.
func (k *PrivateKeyKeyring) PublicKey(keyID sdk.KeyID) ([]byte, error) {
	key, err := k.key(keyID)
	if err != nil {
		return nil, err
	}

	return crypto.FromECDSAPub(&key.PublicKey)[1:], nil
}

// Sign signs the EIP-191 hash of message and returns R || S || V with V in {27, 28}.
func (k *PrivateKeyKeyring) Sign(message []byte, keyID sdk.KeyID) ([]byte, error) {
	key, err := k.key(keyID)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(accounts.TextHash(message), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	return toEthereumV(sig), nil
}

func (k *PrivateKeyKeyring) key(keyID sdk.KeyID) (*ecdsa.PrivateKey, error) {
	key, ok := k.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("no key with id %q in keyring", keyID)
	}

	return key, nil
}
