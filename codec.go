package xchain

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aptos-labs/aptos-go-sdk/bcs"
	bin "github.com/gagliardetto/binary"
)

// CodecVersion1 prefixes every value written by Marshal. Borsh follows it.
const CodecVersion1 byte = 1

// Marshal encodes v for persistence: a version byte followed by its Borsh encoding.
func Marshal(v bin.BinaryMarshaler) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(CodecVersion1)
	if err := v.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data written by Marshal into v. The whole input must be consumed.
func Unmarshal(data []byte, v bin.BinaryUnmarshaler) error {
	if len(data) == 0 {
		return fmt.Errorf("missing codec version: %w", io.ErrUnexpectedEOF)
	}
	if data[0] != CodecVersion1 {
		return fmt.Errorf("%w: %d", ErrUnknownCodecVersion, data[0])
	}

	dec := bin.NewBorshDecoder(data[1:])
	if err := v.UnmarshalWithDecoder(dec); err != nil {
		return err
	}
	if dec.HasRemaining() {
		return TrailingBytesError{Remaining: dec.Remaining()}
	}

	return nil
}

// EncodeBCS encodes v for network transmission.
func EncodeBCS(v bcs.Marshaler) ([]byte, error) {
	return bcs.SerializeSingle(func(ser *bcs.Serializer) {
		v.MarshalBCS(ser)
	})
}

// DecodeBCS decodes data written by EncodeBCS into v. The whole input must be consumed.
func DecodeBCS(data []byte, v bcs.Unmarshaler) error {
	des := bcs.NewDeserializer(data)
	v.UnmarshalBCS(des)
	if err := des.Error(); err != nil {
		return err
	}
	if des.Remaining() > 0 {
		return TrailingBytesError{Remaining: des.Remaining()}
	}

	return nil
}
