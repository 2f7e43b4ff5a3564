package tezos

import (
	bin "github.com/gagliardetto/binary"

	"github.com/smartcontractkit/xchain/types"
)

// EventID orders Tezos events. Both components are 128 bits wide.
type EventID struct {
	Block bin.Uint128
	Index bin.Uint128
}

func (id EventID) Compare(other EventID) int {
	if c := types.CompareUint128(id.Block, other.Block); c != 0 {
		return c
	}

	return types.CompareUint128(id.Index, other.Index)
}

func (id EventID) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint128(id.Block, bin.LE); err != nil {
		return err
	}

	return enc.WriteUint128(id.Index, bin.LE)
}

func (id *EventID) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if id.Block, err = dec.ReadUint128(bin.LE); err != nil {
		return err
	}
	id.Index, err = dec.ReadUint128(bin.LE)

	return err
}

type Event struct{}

func (Event) MarshalWithEncoder(*bin.Encoder) error { return nil }

func (*Event) UnmarshalWithDecoder(*bin.Decoder) error { return nil }
