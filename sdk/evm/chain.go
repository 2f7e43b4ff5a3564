package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/types"
)

var _ sdk.Chain = (*Chain)(nil)

// Chain is the Ethereum implementation of sdk.Chain.
type Chain struct {
	keys      sdk.KeyIDSource
	keyring   sdk.Keyring
	recoverer sdk.Recoverer
}

// NewChain creates an Ethereum chain. A nil recoverer selects ECDSARecoverer.
func NewChain(keys sdk.KeyIDSource, keyring sdk.Keyring, recoverer sdk.Recoverer) *Chain {
	if recoverer == nil {
		recoverer = ECDSARecoverer{}
	}

	return &Chain{
		keys:      keys,
		keyring:   keyring,
		recoverer: recoverer,
	}
}

func (c *Chain) ID() types.ChainID {
	return types.Ethereum
}

// ZeroHash returns the all-zero Keccak-256 sized hash.
func (c *Chain) ZeroHash() (types.Hash, error) {
	return types.Hash{}, nil
}

// HashBytes returns the Keccak-256 hash of data.
func (c *Chain) HashBytes(data []byte) (types.Hash, error) {
	return types.Hash(crypto.Keccak256Hash(data)), nil
}

// RecoverAddress recovers the signer of an EIP-191 personal message.
func (c *Chain) RecoverAddress(message []byte, signature types.Signature) (types.Address, error) {
	raw, err := c.recoverer.Recover(message, signature.Bytes(), true)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %w", types.ErrSignatureRecovery, err)
	}

	addr, err := types.NewAddressFromBytes(raw)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %w", types.ErrSignatureRecovery, err)
	}

	return addr, nil
}

// SignMessage signs message with the configured Ethereum key.
func (c *Chain) SignMessage(message []byte) (types.Signature, error) {
	keyID, err := c.keyID()
	if err != nil {
		return types.Signature{}, err
	}

	raw, err := c.keyring.Sign(message, keyID)
	if err != nil {
		return types.Signature{}, fmt.Errorf("failed to sign with key %q: %w", keyID, err)
	}

	sig, err := types.NewSignatureFromBytes(raw)
	if err != nil {
		return types.Signature{}, fmt.Errorf("keyring returned a bad signature: %w", err)
	}

	return sig, nil
}

func (c *Chain) ParseAddress(addr string) (types.Address, error) {
	return ParseAddress(addr)
}

func (c *Chain) FormatAddress(addr types.Address) (string, error) {
	return FormatAddress(addr), nil
}

// SignerAddress derives the address of the configured Ethereum key from its public key.
func (c *Chain) SignerAddress() (types.Address, error) {
	keyID, err := c.keyID()
	if err != nil {
		return types.Address{}, err
	}

	raw, err := c.keyring.PublicKey(keyID)
	if err != nil {
		return types.Address{}, fmt.Errorf("failed to get public key %q: %w", keyID, err)
	}

	pub, err := types.NewPublicKeyFromBytes(raw)
	if err != nil {
		return types.Address{}, fmt.Errorf("keyring returned a bad public key: %w", err)
	}

	return PublicKeyToAddress(pub), nil
}

func (c *Chain) keyID() (sdk.KeyID, error) {
	if c.keys == nil || c.keyring == nil {
		return "", fmt.Errorf("%w: no keyring configured", types.ErrKeyNotFound)
	}

	keyID, ok := c.keys.SigningKeyID(types.Ethereum)
	if !ok {
		return "", fmt.Errorf("%w for chain %s", types.ErrKeyNotFound, types.Ethereum)
	}

	return keyID, nil
}
