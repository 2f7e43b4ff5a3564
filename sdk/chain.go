package sdk

import (
	"github.com/smartcontractkit/xchain/types"
)

// Chain is the capability contract every supported chain implements. Each method works on the
// raw payload of that chain; the registry wraps results with the chain tag.
type Chain interface {
	// ID returns the chain this implementation serves.
	ID() types.ChainID

	// ZeroHash returns the sentinel hash used for "no prior event".
	ZeroHash() (types.Hash, error)

	// HashBytes hashes arbitrary data with the chain's hash function.
	HashBytes(data []byte) (types.Hash, error)

	// RecoverAddress returns the address whose key produced signature over message.
	RecoverAddress(message []byte, signature types.Signature) (types.Address, error)

	// SignMessage signs message with this node's signing key for the chain.
	SignMessage(message []byte) (types.Signature, error)

	// ParseAddress parses the chain's textual address form.
	ParseAddress(addr string) (types.Address, error)

	// FormatAddress renders an address in the chain's textual form.
	FormatAddress(addr types.Address) (string, error)

	// SignerAddress returns the address of this node's signing key for the chain.
	SignerAddress() (types.Address, error)
}

// KeyID identifies a key held by the key-management collaborator.
type KeyID string

// KeyIDSource reports which key this node signs with on a given chain.
type KeyIDSource interface {
	SigningKeyID(chain types.ChainID) (KeyID, bool)
}

// Keyring is the key-management collaborator. Private keys never leave it.
type Keyring interface {
	// PublicKey returns the public key bytes of keyID.
	PublicKey(keyID KeyID) ([]byte, error)

	// Sign signs message with keyID following the chain's signing convention.
	Sign(message []byte, keyID KeyID) ([]byte, error)
}

// Recoverer is the elliptic curve recovery primitive. When prefixed is true the message is
// hashed with the chain's signed message convention before recovery.
type Recoverer interface {
	Recover(message []byte, signature []byte, prefixed bool) ([]byte, error)
}
