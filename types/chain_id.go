package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"strings"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainID selects one of the supported chains.
//
// The numeric values are persisted as the discriminant of every chain tagged value, so new
// chains may only be appended. Never reorder or reuse a value.
type ChainID uint8

const (
	Compound ChainID = 0
	Ethereum ChainID = 1
	Polkadot ChainID = 2
	Solana   ChainID = 3
	Tezos    ChainID = 4
)

// DefaultChainID is Ethereum, the only chain with a complete implementation.
const DefaultChainID = Ethereum

// AllChainIDs returns every supported chain in discriminant order.
func AllChainIDs() []ChainID {
	return []ChainID{Compound, Ethereum, Polkadot, Solana, Tezos}
}

// Valid reports whether the id is one of the supported chains.
func (c ChainID) Valid() bool {
	switch c {
	case Compound, Ethereum, Polkadot, Solana, Tezos:
		return true
	default:
		return false
	}
}

// String returns the text tag of the chain, as used in "<tag>:<address>" strings.
func (c ChainID) String() string {
	switch c {
	case Compound:
		return "COMP"
	case Ethereum:
		return "ETH"
	case Polkadot:
		return "DOT"
	case Solana:
		return "SOL"
	case Tezos:
		return "TEZ"
	default:
		return fmt.Sprintf("ChainID(%d)", uint8(c))
	}
}

// ParseChainID matches a text tag case-insensitively against the supported chains.
func ParseChainID(s string) (ChainID, error) {
	switch strings.ToUpper(s) {
	case "COMP":
		return Compound, nil
	case "ETH":
		return Ethereum, nil
	case "DOT":
		return Polkadot, nil
	case "SOL":
		return Solana, nil
	case "TEZ":
		return Tezos, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadChainID, s)
	}
}

// Family returns the chain-selectors family the chain belongs to.
func (c ChainID) Family() (string, error) {
	switch c {
	case Ethereum:
		return chainsel.FamilyEVM, nil
	case Solana:
		return chainsel.FamilySolana, nil
	case Compound, Polkadot, Tezos:
		return "", fmt.Errorf("%w for chain %s", ErrChainFamilyNotFound, c)
	default:
		return "", NewUnsupportedChainError(c)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ChainID) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, NewUnsupportedChainError(c)
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ChainID) UnmarshalText(text []byte) error {
	id, err := ParseChainID(string(text))
	if err != nil {
		return err
	}
	*c = id

	return nil
}
