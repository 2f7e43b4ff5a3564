package polkadot

import (
	"cmp"

	bin "github.com/gagliardetto/binary"
)

// EventID orders events observed on the chain.
type EventID struct {
	Block uint64
	Index uint64
}

func (id EventID) Compare(other EventID) int {
	if c := cmp.Compare(id.Block, other.Block); c != 0 {
		return c
	}

	return cmp.Compare(id.Index, other.Index)
}

func (id EventID) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint64(id.Block, bin.LE); err != nil {
		return err
	}

	return enc.WriteUint64(id.Index, bin.LE)
}

func (id *EventID) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if id.Block, err = dec.ReadUint64(bin.LE); err != nil {
		return err
	}
	id.Index, err = dec.ReadUint64(bin.LE)

	return err
}

// Event carries no data until the chain reports events.
type Event struct{}

func (Event) MarshalWithEncoder(*bin.Encoder) error { return nil }

func (*Event) UnmarshalWithDecoder(*bin.Decoder) error { return nil }
