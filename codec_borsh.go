package xchain

import (
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/smartcontractkit/xchain/types"
)

// Borsh layout: a u8 discriminant (the ChainID or kind) followed by fixed width payloads.
// Lists carry a u32 little endian length.

var (
	_ bin.BinaryMarshaler   = ChainAccount{}
	_ bin.BinaryUnmarshaler = (*ChainAccount)(nil)
	_ bin.BinaryMarshaler   = ChainAsset{}
	_ bin.BinaryUnmarshaler = (*ChainAsset)(nil)
	_ bin.BinaryMarshaler   = ChainAssetAccount{}
	_ bin.BinaryUnmarshaler = (*ChainAssetAccount)(nil)
	_ bin.BinaryMarshaler   = CashAsset{}
	_ bin.BinaryUnmarshaler = (*CashAsset)(nil)
	_ bin.BinaryMarshaler   = ChainHash{}
	_ bin.BinaryUnmarshaler = (*ChainHash)(nil)
	_ bin.BinaryMarshaler   = ChainSignature{}
	_ bin.BinaryUnmarshaler = (*ChainSignature)(nil)
	_ bin.BinaryMarshaler   = ChainAccountSignature{}
	_ bin.BinaryUnmarshaler = (*ChainAccountSignature)(nil)
	_ bin.BinaryMarshaler   = ChainSignatureList{}
	_ bin.BinaryUnmarshaler = (*ChainSignatureList)(nil)
)

const addressSignatureSize = types.AddressLength + types.SignatureBytesLength

func writeChain(enc *bin.Encoder, typ string, chain types.ChainID) error {
	if !chain.Valid() {
		return types.NewUnknownDiscriminantError(typ, uint32(chain))
	}

	return enc.WriteUint8(uint8(chain))
}

func readChain(dec *bin.Decoder, typ string) (types.ChainID, error) {
	v, err := dec.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s chain: %w", typ, err)
	}

	chain := types.ChainID(v)
	if !chain.Valid() {
		return 0, types.NewUnknownDiscriminantError(typ, uint32(v))
	}

	return chain, nil
}

func readFixed(dec *bin.Decoder, dst []byte) error {
	b, err := dec.ReadBytes(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)

	return nil
}

func (a ChainAccount) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainAccount", a.Chain); err != nil {
		return err
	}

	return enc.WriteBytes(a.Address[:], false)
}

func (a *ChainAccount) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainAccount
	if out.Chain, err = readChain(dec, "ChainAccount"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Address[:]); err != nil {
		return err
	}
	*a = out

	return nil
}

func (a ChainAsset) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainAsset", a.Chain); err != nil {
		return err
	}

	return enc.WriteBytes(a.Address[:], false)
}

func (a *ChainAsset) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainAsset
	if out.Chain, err = readChain(dec, "ChainAsset"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Address[:]); err != nil {
		return err
	}
	*a = out

	return nil
}

func (a ChainAssetAccount) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainAssetAccount", a.Chain); err != nil {
		return err
	}
	if err := enc.WriteBytes(a.Asset[:], false); err != nil {
		return err
	}

	return enc.WriteBytes(a.Account[:], false)
}

func (a *ChainAssetAccount) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainAssetAccount
	if out.Chain, err = readChain(dec, "ChainAssetAccount"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Asset[:]); err != nil {
		return err
	}
	if err = readFixed(dec, out.Account[:]); err != nil {
		return err
	}
	*a = out

	return nil
}

func (c CashAsset) MarshalWithEncoder(enc *bin.Encoder) error {
	switch c.Kind {
	case CashAssetKindCash:
		return enc.WriteUint8(uint8(c.Kind))
	case CashAssetKindAsset:
		if err := enc.WriteUint8(uint8(c.Kind)); err != nil {
			return err
		}

		return c.Asset.MarshalWithEncoder(enc)
	default:
		return types.NewUnknownDiscriminantError("CashAsset", uint32(c.Kind))
	}
}

func (c *CashAsset) UnmarshalWithDecoder(dec *bin.Decoder) error {
	kind, err := dec.ReadUint8()
	if err != nil {
		return fmt.Errorf("failed to read CashAsset kind: %w", err)
	}

	switch CashAssetKind(kind) {
	case CashAssetKindCash:
		*c = NewCash()
	case CashAssetKindAsset:
		var asset ChainAsset
		if err := asset.UnmarshalWithDecoder(dec); err != nil {
			return err
		}
		*c = NewCashAsset(asset)
	default:
		return types.NewUnknownDiscriminantError("CashAsset", uint32(kind))
	}

	return nil
}

func (h ChainHash) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainHash", h.Chain); err != nil {
		return err
	}

	return enc.WriteBytes(h.Hash[:], false)
}

func (h *ChainHash) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainHash
	if out.Chain, err = readChain(dec, "ChainHash"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Hash[:]); err != nil {
		return err
	}
	*h = out

	return nil
}

func (s ChainSignature) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainSignature", s.Chain); err != nil {
		return err
	}

	return enc.WriteBytes(s.Signature[:], false)
}

func (s *ChainSignature) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainSignature
	if out.Chain, err = readChain(dec, "ChainSignature"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Signature[:]); err != nil {
		return err
	}
	*s = out

	return nil
}

func (s ChainAccountSignature) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainAccountSignature", s.Chain); err != nil {
		return err
	}
	if err := enc.WriteBytes(s.Account[:], false); err != nil {
		return err
	}

	return enc.WriteBytes(s.Signature[:], false)
}

func (s *ChainAccountSignature) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	var out ChainAccountSignature
	if out.Chain, err = readChain(dec, "ChainAccountSignature"); err != nil {
		return err
	}
	if err = readFixed(dec, out.Account[:]); err != nil {
		return err
	}
	if err = readFixed(dec, out.Signature[:]); err != nil {
		return err
	}
	*s = out

	return nil
}

func (l ChainSignatureList) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := writeChain(enc, "ChainSignatureList", l.Chain); err != nil {
		return err
	}
	if err := enc.WriteLength(len(l.Signatures)); err != nil {
		return err
	}
	for _, s := range l.Signatures {
		if err := enc.WriteBytes(s.Address[:], false); err != nil {
			return err
		}
		if err := enc.WriteBytes(s.Signature[:], false); err != nil {
			return err
		}
	}

	return nil
}

func (l *ChainSignatureList) UnmarshalWithDecoder(dec *bin.Decoder) error {
	chain, err := readChain(dec, "ChainSignatureList")
	if err != nil {
		return err
	}

	n, err := dec.ReadLength()
	if err != nil {
		return fmt.Errorf("failed to read signature count: %w", err)
	}
	if n*addressSignatureSize > dec.Remaining() {
		return fmt.Errorf("signature count %d exceeds remaining %d bytes", n, dec.Remaining())
	}

	out := ChainSignatureList{Chain: chain}
	if n > 0 {
		out.Signatures = make([]AddressSignature, n)
	}
	for i := range out.Signatures {
		if err := readFixed(dec, out.Signatures[i].Address[:]); err != nil {
			return err
		}
		if err := readFixed(dec, out.Signatures[i].Signature[:]); err != nil {
			return err
		}
	}
	*l = out

	return nil
}
