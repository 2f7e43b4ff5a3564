package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	bin "github.com/gagliardetto/binary"
)

const (
	// AddressLength is the width in bytes of a chain address.
	AddressLength = 20

	// HashLength is the width in bytes of a chain hash.
	HashLength = 32

	// PublicKeyLength is the width in bytes of an uncompressed public key without its prefix.
	PublicKeyLength = 64

	// SignatureBytesLength defines the length of the signature in bytes after summing the byte
	// values of R, S, and V.
	SignatureBytesLength = 65

	// SignatureComponentSize defines the size of each signature component (R and S) in bytes.
	SignatureComponentSize = 32
)

// Address is the raw address of an account or asset on a chain.
type Address [AddressLength]byte

// Hash is a 32 byte digest produced by a chain's hash function.
type Hash [HashLength]byte

// PublicKey is an uncompressed public key without the 0x04 prefix.
type PublicKey [PublicKeyLength]byte

// Amount, CashIndex, Rate and Timestamp are the 128-bit quantities chains report to the ledger.
type (
	Amount    = bin.Uint128
	CashIndex = bin.Uint128
	Rate      = bin.Uint128
	Timestamp = bin.Uint128
)

// CompareUint128 orders two 128-bit quantities numerically.
func CompareUint128(a, b bin.Uint128) int {
	if c := cmp.Compare(a.Hi, b.Hi); c != 0 {
		return c
	}

	return cmp.Compare(a.Lo, b.Lo)
}

// NewAddressFromBytes creates an Address from a byte slice of exactly AddressLength bytes.
func NewAddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: want %d bytes, got %d", ErrBadAddress, AddressLength, len(b))
	}
	copy(a[:], b)

	return a, nil
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte { return bytes.Clone(a[:]) }

// String returns the lowercase 0x prefixed hex form of the address.
func (a Address) String() string { return hexutil.Encode(a[:]) }

// Compare orders addresses by their bytes.
func (a Address) Compare(other Address) int { return bytes.Compare(a[:], other[:]) }

// IsZero reports whether every byte of the address is zero.
func (a Address) IsZero() bool { return a == Address{} }

// Bytes returns a copy of the hash bytes.
func (h Hash) Bytes() []byte { return bytes.Clone(h[:]) }

// String returns the 0x prefixed hex form of the hash.
func (h Hash) String() string { return hexutil.Encode(h[:]) }

// NewPublicKeyFromBytes creates a PublicKey from 64 raw bytes, or 65 bytes carrying the 0x04
// uncompressed point prefix.
func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) == PublicKeyLength+1 && b[0] == 0x04 {
		b = b[1:]
	}
	if len(b) != PublicKeyLength {
		return pk, fmt.Errorf("invalid public key length: %d", len(b))
	}
	copy(pk[:], b)

	return pk, nil
}
