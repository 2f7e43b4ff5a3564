package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Signature is a recoverable signature of concatenated R, S and V values.
type Signature [SignatureBytesLength]byte

// NewSignatureFromBytes creates a new Signature from a byte slice of concatenated R, S, and V
// values.
func NewSignatureFromBytes(sig []byte) (Signature, error) {
	var s Signature
	if len(sig) != SignatureBytesLength {
		return s, fmt.Errorf("invalid signature length: %d", len(sig))
	}
	copy(s[:], sig)

	return s, nil
}

// R returns the R component of the signature.
func (s Signature) R() common.Hash { return common.BytesToHash(s[:SignatureComponentSize]) }

// S returns the S component of the signature.
func (s Signature) S() common.Hash {
	return common.BytesToHash(s[SignatureComponentSize : SignatureBytesLength-1])
}

// V returns the recovery id of the signature.
func (s Signature) V() uint8 { return s[SignatureBytesLength-1] }

// Bytes returns a copy of the signature bytes.
func (s Signature) Bytes() []byte { return bytes.Clone(s[:]) }

// String returns the 0x prefixed hex form of the signature.
func (s Signature) String() string { return hexutil.Encode(s[:]) }

// SignatureFromHex parses a 0x prefixed hex signature.
func SignatureFromHex(s string) (Signature, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	return NewSignatureFromBytes(b)
}
