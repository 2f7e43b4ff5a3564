package evm

import (
	"cmp"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/smartcontractkit/xchain/types"
)

// EventID locates a log on Ethereum by block number and log index.
type EventID struct {
	Block    uint32
	LogIndex uint32
}

// Compare orders event ids by block, then by log index.
func (id EventID) Compare(other EventID) int {
	if c := cmp.Compare(id.Block, other.Block); c != 0 {
		return c
	}

	return cmp.Compare(id.LogIndex, other.LogIndex)
}

func (id EventID) String() string {
	return fmt.Sprintf("%d:%d", id.Block, id.LogIndex)
}

func (id EventID) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint32(id.Block, bin.LE); err != nil {
		return err
	}

	return enc.WriteUint32(id.LogIndex, bin.LE)
}

func (id *EventID) UnmarshalWithDecoder(dec *bin.Decoder) (err error) {
	if id.Block, err = dec.ReadUint32(bin.LE); err != nil {
		return err
	}
	id.LogIndex, err = dec.ReadUint32(bin.LE)

	return err
}

// EventKind is the discriminant of EventData. Values are persisted; append only.
type EventKind uint8

const (
	EventKindLock     EventKind = 0
	EventKindLockCash EventKind = 1
	EventKindGov      EventKind = 2
)

func (k EventKind) String() string {
	switch k {
	case EventKindLock:
		return "Lock"
	case EventKindLockCash:
		return "LockCash"
	case EventKindGov:
		return "Gov"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// EventData is the payload of a starport event. Only the fields of Kind are meaningful:
//
//	Lock:     Asset, Holder, Amount
//	LockCash: Holder, Amount, Index
//	Gov:      none
type EventData struct {
	Kind   EventKind
	Asset  types.Address
	Holder types.Address
	Amount types.Amount
	Index  types.CashIndex
}

// NewLockEvent returns the data of an asset lock.
func NewLockEvent(asset, holder types.Address, amount types.Amount) EventData {
	return EventData{Kind: EventKindLock, Asset: asset, Holder: holder, Amount: amount}
}

// NewLockCashEvent returns the data of a cash lock at the given cash index.
func NewLockCashEvent(holder types.Address, amount types.Amount, index types.CashIndex) EventData {
	return EventData{Kind: EventKindLockCash, Holder: holder, Amount: amount, Index: index}
}

// NewGovEvent returns the data of a governance event.
func NewGovEvent() EventData {
	return EventData{Kind: EventKindGov}
}

func (d EventData) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := enc.WriteUint8(uint8(d.Kind)); err != nil {
		return err
	}

	switch d.Kind {
	case EventKindLock:
		if err := enc.WriteBytes(d.Asset[:], false); err != nil {
			return err
		}
		if err := enc.WriteBytes(d.Holder[:], false); err != nil {
			return err
		}

		return enc.WriteUint128(d.Amount, bin.LE)
	case EventKindLockCash:
		if err := enc.WriteBytes(d.Holder[:], false); err != nil {
			return err
		}
		if err := enc.WriteUint128(d.Amount, bin.LE); err != nil {
			return err
		}

		return enc.WriteUint128(d.Index, bin.LE)
	case EventKindGov:
		return nil
	default:
		return types.NewUnknownDiscriminantError("evm.EventData", uint32(d.Kind))
	}
}

func (d *EventData) UnmarshalWithDecoder(dec *bin.Decoder) error {
	kind, err := dec.ReadUint8()
	if err != nil {
		return err
	}

	out := EventData{Kind: EventKind(kind)}
	switch out.Kind {
	case EventKindLock:
		if out.Asset, err = readAddress(dec); err != nil {
			return err
		}
		if out.Holder, err = readAddress(dec); err != nil {
			return err
		}
		if out.Amount, err = dec.ReadUint128(bin.LE); err != nil {
			return err
		}
	case EventKindLockCash:
		if out.Holder, err = readAddress(dec); err != nil {
			return err
		}
		if out.Amount, err = dec.ReadUint128(bin.LE); err != nil {
			return err
		}
		if out.Index, err = dec.ReadUint128(bin.LE); err != nil {
			return err
		}
	case EventKindGov:
	default:
		return types.NewUnknownDiscriminantError("evm.EventData", uint32(kind))
	}

	*d = out

	return nil
}

// Event is a log observed on the Ethereum starport.
type Event struct {
	ID   EventID
	Data EventData
}

func (e Event) MarshalWithEncoder(enc *bin.Encoder) error {
	if err := e.ID.MarshalWithEncoder(enc); err != nil {
		return err
	}

	return e.Data.MarshalWithEncoder(enc)
}

func (e *Event) UnmarshalWithDecoder(dec *bin.Decoder) error {
	if err := e.ID.UnmarshalWithDecoder(dec); err != nil {
		return err
	}

	return e.Data.UnmarshalWithDecoder(dec)
}

func readAddress(dec *bin.Decoder) (types.Address, error) {
	b, err := dec.ReadBytes(types.AddressLength)
	if err != nil {
		return types.Address{}, err
	}

	return types.NewAddressFromBytes(b)
}
