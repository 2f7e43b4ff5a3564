package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
)

var (
	// ErrBadAddress is returned when a textual or binary address is malformed.
	ErrBadAddress = errors.New("bad address")

	// ErrBadChainID is returned when a chain tag is not recognized.
	ErrBadChainID = errors.New("bad chain id")

	// ErrBadAsset is returned when a "<chain>:<address>" string is malformed.
	ErrBadAsset = errors.New("bad asset")

	// ErrKeyNotFound is returned when no signing key is configured for a chain.
	ErrKeyNotFound = errors.New("signing key not found")

	// ErrSignatureRecovery is returned when a signature is malformed or does not recover.
	ErrSignatureRecovery = errors.New("signature recovery error")

	// ErrSignatureAccountMismatch is returned when the recovered signer is not the claimed account.
	ErrSignatureAccountMismatch = errors.New("signature account mismatch")

	// ErrUnsupportedChain is returned for a chain id without an implementation.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrUnsupportedOperation is returned when a chain does not implement an operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrChainMismatch is returned when two values that must share a chain tag do not.
	ErrChainMismatch = errors.New("chain mismatch")

	// ErrUnknownDiscriminant is returned when decoding meets a variant index it does not know.
	ErrUnknownDiscriminant = errors.New("unknown discriminant")

	// ErrChainFamilyNotFound is returned when a chain has no chain-selectors family.
	ErrChainFamilyNotFound = errors.New("chain family not found")
)

// UnsupportedChainError is returned when a chain id has no implementation in the registry.
type UnsupportedChainError struct {
	Chain ChainID
}

// NewUnsupportedChainError creates a new UnsupportedChainError.
func NewUnsupportedChainError(chain ChainID) *UnsupportedChainError {
	return &UnsupportedChainError{Chain: chain}
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("unsupported chain: %s", e.Chain)
}

func (e *UnsupportedChainError) Unwrap() error {
	return ErrUnsupportedChain
}

// UnsupportedOperationError is returned when a placeholder chain is asked to do something.
type UnsupportedOperationError struct {
	Chain     ChainID
	Operation string
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError.
func NewUnsupportedOperationError(chain ChainID, operation string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Chain: chain, Operation: operation}
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %s is not implemented for chain %s", e.Operation, e.Chain)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// SignatureAccountMismatchError is returned when a signature recovers to an address other than
// the account that claimed it.
type SignatureAccountMismatchError struct {
	Chain     ChainID
	Claimed   Address
	Recovered Address
}

// NewSignatureAccountMismatchError creates a new SignatureAccountMismatchError.
func NewSignatureAccountMismatchError(chain ChainID, claimed, recovered Address) *SignatureAccountMismatchError {
	return &SignatureAccountMismatchError{Chain: chain, Claimed: claimed, Recovered: recovered}
}

func (e *SignatureAccountMismatchError) Error() string {
	return fmt.Sprintf("signature account mismatch on chain %s: claimed %s, recovered %s", e.Chain, e.Claimed, e.Recovered)
}

func (e *SignatureAccountMismatchError) Unwrap() error {
	return ErrSignatureAccountMismatch
}

// UnknownDiscriminantError is returned when a decoder reads a variant index it does not know.
type UnknownDiscriminantError struct {
	Type  string
	Value uint32
}

// NewUnknownDiscriminantError creates a new UnknownDiscriminantError.
func NewUnknownDiscriminantError(typ string, value uint32) *UnknownDiscriminantError {
	return &UnknownDiscriminantError{Type: typ, Value: value}
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unknown discriminant %d for %s", e.Value, e.Type)
}

func (e *UnknownDiscriminantError) Unwrap() error {
	return ErrUnknownDiscriminant
}
