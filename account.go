package xchain

import (
	"cmp"

	"github.com/smartcontractkit/xchain/types"
)

// ChainAccount is an address on a specific chain.
type ChainAccount struct {
	Chain   types.ChainID
	Address types.Address
}

// NewChainAccount tags addr with chain.
func NewChainAccount(chain types.ChainID, addr types.Address) ChainAccount {
	return ChainAccount{Chain: chain, Address: addr}
}

func (a ChainAccount) ChainID() types.ChainID { return a.Chain }

// Compare orders accounts by chain, then by address bytes.
func (a ChainAccount) Compare(other ChainAccount) int {
	if c := cmp.Compare(a.Chain, other.Chain); c != 0 {
		return c
	}

	return a.Address.Compare(other.Address)
}

// ChainAsset is a token contract on a specific chain.
type ChainAsset struct {
	Chain   types.ChainID
	Address types.Address
}

// NewChainAsset tags addr with chain.
func NewChainAsset(chain types.ChainID, addr types.Address) ChainAsset {
	return ChainAsset{Chain: chain, Address: addr}
}

func (a ChainAsset) ChainID() types.ChainID { return a.Chain }

// Compare orders assets by chain, then by address bytes.
func (a ChainAsset) Compare(other ChainAsset) int {
	if c := cmp.Compare(a.Chain, other.Chain); c != 0 {
		return c
	}

	return a.Address.Compare(other.Address)
}

// ChainAssetAccount pairs an asset with a holder on the same chain.
type ChainAssetAccount struct {
	Chain   types.ChainID
	Asset   types.Address
	Account types.Address
}

// NewChainAssetAccount combines asset and account, which must share a chain.
func NewChainAssetAccount(asset ChainAsset, account ChainAccount) (ChainAssetAccount, error) {
	if asset.Chain != account.Chain {
		return ChainAssetAccount{}, newChainMismatchError(asset.Chain, account.Chain)
	}

	return ChainAssetAccount{Chain: asset.Chain, Asset: asset.Address, Account: account.Address}, nil
}

func (a ChainAssetAccount) ChainID() types.ChainID { return a.Chain }

func (a ChainAssetAccount) ChainAsset() ChainAsset {
	return ChainAsset{Chain: a.Chain, Address: a.Asset}
}

func (a ChainAssetAccount) ChainAccount() ChainAccount {
	return ChainAccount{Chain: a.Chain, Address: a.Account}
}

// CashAssetKind is the discriminant of CashAsset. Values are persisted; append only.
type CashAssetKind uint8

const (
	CashAssetKindCash  CashAssetKind = 0
	CashAssetKindAsset CashAssetKind = 1
)

// CashAsset is either the native cash token or a chain asset.
type CashAsset struct {
	Kind  CashAssetKind
	Asset ChainAsset
}

// NewCash returns the native cash token.
func NewCash() CashAsset {
	return CashAsset{Kind: CashAssetKindCash}
}

// NewCashAsset wraps a chain asset.
func NewCashAsset(asset ChainAsset) CashAsset {
	return CashAsset{Kind: CashAssetKindAsset, Asset: asset}
}

func (c CashAsset) IsCash() bool { return c.Kind == CashAssetKindCash }
