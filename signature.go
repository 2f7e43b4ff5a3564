package xchain

import (
	"github.com/smartcontractkit/xchain/types"
)

// ChainSignature is a signature produced under a chain's signing scheme.
type ChainSignature struct {
	Chain     types.ChainID
	Signature types.Signature
}

func (s ChainSignature) ChainID() types.ChainID { return s.Chain }

// ChainAccountSignature is a signature together with the account claiming to have made it.
type ChainAccountSignature struct {
	Chain     types.ChainID
	Account   types.Address
	Signature types.Signature
}

// NewChainAccountSignature pairs account with sig. Both must carry the same chain tag.
func NewChainAccountSignature(account ChainAccount, sig ChainSignature) (ChainAccountSignature, error) {
	if account.Chain != sig.Chain {
		return ChainAccountSignature{}, newChainMismatchError(account.Chain, sig.Chain)
	}

	return ChainAccountSignature{
		Chain:     account.Chain,
		Account:   account.Address,
		Signature: sig.Signature,
	}, nil
}

func (s ChainAccountSignature) ChainID() types.ChainID { return s.Chain }

// ToChainSignature drops the claimed account.
func (s ChainAccountSignature) ToChainSignature() ChainSignature {
	return ChainSignature{Chain: s.Chain, Signature: s.Signature}
}

// ClaimedAccount returns the account the signature claims to be from. It is not verified.
func (s ChainAccountSignature) ClaimedAccount() ChainAccount {
	return ChainAccount{Chain: s.Chain, Address: s.Account}
}

// AddressSignature is one entry of a ChainSignatureList.
type AddressSignature struct {
	Address   types.Address
	Signature types.Signature
}

// ChainSignatureList is an ordered multi-party attestation on one chain.
type ChainSignatureList struct {
	Chain      types.ChainID
	Signatures []AddressSignature
}

// NewChainSignatureList returns an empty list for chain.
func NewChainSignatureList(chain types.ChainID) ChainSignatureList {
	return ChainSignatureList{Chain: chain}
}

func (l ChainSignatureList) ChainID() types.ChainID { return l.Chain }

func (l ChainSignatureList) Len() int { return len(l.Signatures) }

// Append returns a copy of l with sig added at the end.
func (l ChainSignatureList) Append(sig ChainAccountSignature) (ChainSignatureList, error) {
	if sig.Chain != l.Chain {
		return l, newChainMismatchError(l.Chain, sig.Chain)
	}

	out := ChainSignatureList{
		Chain:      l.Chain,
		Signatures: make([]AddressSignature, 0, len(l.Signatures)+1),
	}
	out.Signatures = append(out.Signatures, l.Signatures...)
	out.Signatures = append(out.Signatures, AddressSignature{Address: sig.Account, Signature: sig.Signature})

	return out, nil
}

// At returns entry i as a ChainAccountSignature.
func (l ChainSignatureList) At(i int) ChainAccountSignature {
	return ChainAccountSignature{
		Chain:     l.Chain,
		Account:   l.Signatures[i].Address,
		Signature: l.Signatures[i].Signature,
	}
}
