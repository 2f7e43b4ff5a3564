package xchain

import (
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk/bcs"

	"github.com/smartcontractkit/xchain/internal/utils/safecast"
	"github.com/smartcontractkit/xchain/types"
)

// BCS layout: a ULEB128 variant index (the ChainID or kind) followed by fixed width payloads.
// Lists carry a ULEB128 length.

var (
	_ bcs.Marshaler   = ChainAccount{}
	_ bcs.Unmarshaler = (*ChainAccount)(nil)
	_ bcs.Marshaler   = ChainAsset{}
	_ bcs.Unmarshaler = (*ChainAsset)(nil)
	_ bcs.Marshaler   = ChainAssetAccount{}
	_ bcs.Unmarshaler = (*ChainAssetAccount)(nil)
	_ bcs.Marshaler   = CashAsset{}
	_ bcs.Unmarshaler = (*CashAsset)(nil)
	_ bcs.Marshaler   = ChainHash{}
	_ bcs.Unmarshaler = (*ChainHash)(nil)
	_ bcs.Marshaler   = ChainSignature{}
	_ bcs.Unmarshaler = (*ChainSignature)(nil)
	_ bcs.Marshaler   = ChainAccountSignature{}
	_ bcs.Unmarshaler = (*ChainAccountSignature)(nil)
	_ bcs.Marshaler   = ChainSignatureList{}
	_ bcs.Unmarshaler = (*ChainSignatureList)(nil)
)

func serializeChain(ser *bcs.Serializer, typ string, chain types.ChainID) bool {
	if !chain.Valid() {
		ser.SetError(types.NewUnknownDiscriminantError(typ, uint32(chain)))
		return false
	}
	ser.Uleb128(uint32(chain))

	return true
}

func deserializeChain(des *bcs.Deserializer, typ string) (types.ChainID, bool) {
	v := des.Uleb128()
	if des.Error() != nil {
		return 0, false
	}

	b, err := safecast.Uint32ToUint8(v)
	if err != nil || !types.ChainID(b).Valid() {
		des.SetError(types.NewUnknownDiscriminantError(typ, v))
		return 0, false
	}

	return types.ChainID(b), true
}

func deserializeFixed(des *bcs.Deserializer, dst []byte) bool {
	b := des.ReadFixedBytes(len(dst))
	if des.Error() != nil {
		return false
	}
	copy(dst, b)

	return true
}

func (a ChainAccount) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainAccount", a.Chain) {
		ser.FixedBytes(a.Address[:])
	}
}

func (a *ChainAccount) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainAccount
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainAccount"); !ok {
		return
	}
	if !deserializeFixed(des, out.Address[:]) {
		return
	}
	*a = out
}

func (a ChainAsset) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainAsset", a.Chain) {
		ser.FixedBytes(a.Address[:])
	}
}

func (a *ChainAsset) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainAsset
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainAsset"); !ok {
		return
	}
	if !deserializeFixed(des, out.Address[:]) {
		return
	}
	*a = out
}

func (a ChainAssetAccount) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainAssetAccount", a.Chain) {
		ser.FixedBytes(a.Asset[:])
		ser.FixedBytes(a.Account[:])
	}
}

func (a *ChainAssetAccount) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainAssetAccount
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainAssetAccount"); !ok {
		return
	}
	if !deserializeFixed(des, out.Asset[:]) || !deserializeFixed(des, out.Account[:]) {
		return
	}
	*a = out
}

func (c CashAsset) MarshalBCS(ser *bcs.Serializer) {
	switch c.Kind {
	case CashAssetKindCash:
		ser.Uleb128(uint32(c.Kind))
	case CashAssetKindAsset:
		ser.Uleb128(uint32(c.Kind))
		c.Asset.MarshalBCS(ser)
	default:
		ser.SetError(types.NewUnknownDiscriminantError("CashAsset", uint32(c.Kind)))
	}
}

func (c *CashAsset) UnmarshalBCS(des *bcs.Deserializer) {
	kind := des.Uleb128()
	if des.Error() != nil {
		return
	}

	switch kind {
	case uint32(CashAssetKindCash):
		*c = NewCash()
	case uint32(CashAssetKindAsset):
		var asset ChainAsset
		asset.UnmarshalBCS(des)
		if des.Error() != nil {
			return
		}
		*c = NewCashAsset(asset)
	default:
		des.SetError(types.NewUnknownDiscriminantError("CashAsset", kind))
	}
}

func (h ChainHash) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainHash", h.Chain) {
		ser.FixedBytes(h.Hash[:])
	}
}

func (h *ChainHash) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainHash
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainHash"); !ok {
		return
	}
	if !deserializeFixed(des, out.Hash[:]) {
		return
	}
	*h = out
}

func (s ChainSignature) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainSignature", s.Chain) {
		ser.FixedBytes(s.Signature[:])
	}
}

func (s *ChainSignature) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainSignature
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainSignature"); !ok {
		return
	}
	if !deserializeFixed(des, out.Signature[:]) {
		return
	}
	*s = out
}

func (s ChainAccountSignature) MarshalBCS(ser *bcs.Serializer) {
	if serializeChain(ser, "ChainAccountSignature", s.Chain) {
		ser.FixedBytes(s.Account[:])
		ser.FixedBytes(s.Signature[:])
	}
}

func (s *ChainAccountSignature) UnmarshalBCS(des *bcs.Deserializer) {
	var out ChainAccountSignature
	var ok bool
	if out.Chain, ok = deserializeChain(des, "ChainAccountSignature"); !ok {
		return
	}
	if !deserializeFixed(des, out.Account[:]) || !deserializeFixed(des, out.Signature[:]) {
		return
	}
	*s = out
}

func (l ChainSignatureList) MarshalBCS(ser *bcs.Serializer) {
	if !serializeChain(ser, "ChainSignatureList", l.Chain) {
		return
	}

	n, err := safecast.IntToUint32(len(l.Signatures))
	if err != nil {
		ser.SetError(fmt.Errorf("too many signatures: %w", err))
		return
	}
	ser.Uleb128(n)
	for _, s := range l.Signatures {
		ser.FixedBytes(s.Address[:])
		ser.FixedBytes(s.Signature[:])
	}
}

func (l *ChainSignatureList) UnmarshalBCS(des *bcs.Deserializer) {
	chain, ok := deserializeChain(des, "ChainSignatureList")
	if !ok {
		return
	}

	n := des.Uleb128()
	if des.Error() != nil {
		return
	}
	if uint64(n)*addressSignatureSize > uint64(des.Remaining()) {
		des.SetError(fmt.Errorf("signature count %d exceeds remaining %d bytes", n, des.Remaining()))
		return
	}

	out := ChainSignatureList{Chain: chain}
	if n > 0 {
		out.Signatures = make([]AddressSignature, n)
	}
	for i := range out.Signatures {
		if !deserializeFixed(des, out.Signatures[i].Address[:]) || !deserializeFixed(des, out.Signatures[i].Signature[:]) {
			return
		}
	}
	*l = out
}
