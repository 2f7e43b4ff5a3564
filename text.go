package xchain

import (
	"fmt"
	"strings"

	"github.com/smartcontractkit/xchain/sdk"
	"github.com/smartcontractkit/xchain/sdk/evm"
	"github.com/smartcontractkit/xchain/types"
)

const (
	textSeparator = ":"
	cashText      = "CASH"
)

// ParseChainAccount parses "<chain-tag>:<address>", e.g. "ETH:0x2222222222222222222222222222222222222222".
// The tag is matched case-insensitively; the address is parsed by the chain it names.
func ParseChainAccount(s string) (ChainAccount, error) {
	chain, addr, err := parseTagged(s)
	if err != nil {
		return ChainAccount{}, err
	}

	return ChainAccount{Chain: chain, Address: addr}, nil
}

// ParseChainAsset parses "<chain-tag>:<address>" into a ChainAsset.
func ParseChainAsset(s string) (ChainAsset, error) {
	chain, addr, err := parseTagged(s)
	if err != nil {
		return ChainAsset{}, err
	}

	return ChainAsset{Chain: chain, Address: addr}, nil
}

// ParseCashAsset parses "CASH" or a chain asset string.
func ParseCashAsset(s string) (CashAsset, error) {
	if strings.EqualFold(s, cashText) {
		return NewCash(), nil
	}

	asset, err := ParseChainAsset(s)
	if err != nil {
		return CashAsset{}, err
	}

	return NewCashAsset(asset), nil
}

func parseTagged(s string) (types.ChainID, types.Address, error) {
	tag, body, ok := strings.Cut(s, textSeparator)
	if !ok {
		return 0, types.Address{}, fmt.Errorf("%w: missing chain tag in %q", types.ErrBadAsset, s)
	}

	chain, err := types.ParseChainID(tag)
	if err != nil {
		return 0, types.Address{}, err
	}

	addr, err := parseAddress(chain, body)
	if err != nil {
		return 0, types.Address{}, err
	}

	return chain, addr, nil
}

// parseAddress and formatAddress are the static text codecs of each chain. They match what the
// registered sdk.Chain does and let values decode without a Registry at hand.
func parseAddress(chain types.ChainID, s string) (types.Address, error) {
	switch chain {
	case types.Ethereum:
		return evm.ParseAddress(s)
	case types.Compound, types.Polkadot, types.Solana, types.Tezos:
		return types.Address{}, types.NewUnsupportedOperationError(chain, sdk.OpParseAddress)
	default:
		return types.Address{}, types.NewUnsupportedChainError(chain)
	}
}

func formatAddress(chain types.ChainID, addr types.Address) (string, error) {
	switch chain {
	case types.Ethereum:
		return evm.FormatAddress(addr), nil
	case types.Compound, types.Polkadot, types.Solana, types.Tezos:
		return "", types.NewUnsupportedOperationError(chain, sdk.OpFormatAddress)
	default:
		return "", types.NewUnsupportedChainError(chain)
	}
}

func formatTagged(chain types.ChainID, addr types.Address) (string, error) {
	s, err := formatAddress(chain, addr)
	if err != nil {
		return "", err
	}

	return chain.String() + textSeparator + s, nil
}

// debugString never fails. Its output is only parseable for chains with a text format.
func debugString(chain types.ChainID, addr types.Address) string {
	s, err := formatTagged(chain, addr)
	if err != nil {
		return fmt.Sprintf("%s(%s)", chain, addr)
	}

	return s
}

func (a ChainAccount) String() string {
	return debugString(a.Chain, a.Address)
}

// MarshalText emits "<chain-tag>:<address>". Chains without a text format return
// types.ErrUnsupportedOperation.
func (a ChainAccount) MarshalText() ([]byte, error) {
	s, err := formatTagged(a.Chain, a.Address)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

func (a *ChainAccount) UnmarshalText(text []byte) error {
	parsed, err := ParseChainAccount(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

func (a ChainAsset) String() string {
	return debugString(a.Chain, a.Address)
}

func (a ChainAsset) MarshalText() ([]byte, error) {
	s, err := formatTagged(a.Chain, a.Address)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

func (a *ChainAsset) UnmarshalText(text []byte) error {
	parsed, err := ParseChainAsset(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

func (c CashAsset) String() string {
	if c.IsCash() {
		return cashText
	}

	return c.Asset.String()
}

func (c CashAsset) MarshalText() ([]byte, error) {
	if c.IsCash() {
		return []byte(cashText), nil
	}

	return c.Asset.MarshalText()
}

func (c *CashAsset) UnmarshalText(text []byte) error {
	parsed, err := ParseCashAsset(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
