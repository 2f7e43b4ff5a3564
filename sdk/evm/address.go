package evm

import (
	"encoding/hex"
	"fmt"

	"github.com/smartcontractkit/xchain/types"
)

const (
	addressPrefix  = "0x"
	addressTextLen = len(addressPrefix) + 2*types.AddressLength
)

// ParseAddress parses a "0x" prefixed address of exactly 40 hex characters.
func ParseAddress(addr string) (types.Address, error) {
	if len(addr) != addressTextLen || addr[:len(addressPrefix)] != addressPrefix {
		return types.Address{}, fmt.Errorf("%w: %q", types.ErrBadAddress, addr)
	}

	b, err := hex.DecodeString(addr[len(addressPrefix):])
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %q: %w", types.ErrBadAddress, addr, err)
	}

	return types.NewAddressFromBytes(b)
}

// FormatAddress renders addr as "0x" followed by 40 lowercase hex characters.
func FormatAddress(addr types.Address) string {
	return addressPrefix + hex.EncodeToString(addr[:])
}
