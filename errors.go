package xchain

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/xchain/types"
)

var (
	// ErrUnknownCodecVersion is returned when an envelope carries a version this build cannot read.
	ErrUnknownCodecVersion = errors.New("unknown codec version")

	// ErrTrailingBytes is returned when input remains after a value was decoded.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")
)

// ChainMismatchError is returned when two values that must share a chain tag do not.
type ChainMismatchError struct {
	Want types.ChainID
	Got  types.ChainID
}

// Error implements the error interface.
func (e ChainMismatchError) Error() string {
	return fmt.Sprintf("chain mismatch: expected %s, got %s", e.Want, e.Got)
}

func (e ChainMismatchError) Unwrap() error {
	return types.ErrChainMismatch
}

func newChainMismatchError(want, got types.ChainID) error {
	return ChainMismatchError{Want: want, Got: got}
}

// TrailingBytesError reports how many bytes were left after decoding.
type TrailingBytesError struct {
	Remaining int
}

// Error implements the error interface.
func (e TrailingBytesError) Error() string {
	return fmt.Sprintf("%d trailing bytes after decoded value", e.Remaining)
}

func (e TrailingBytesError) Unwrap() error {
	return ErrTrailingBytes
}
