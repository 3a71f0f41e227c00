package bignum

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BigInt{}
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (i BigInt) MarshalText() ([]byte, error) {
	return i.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *BigInt) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes the value as a bare JSON number.
func (i BigInt) MarshalJSON() ([]byte, error) {
	return i.appendText(nil), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
// null leaves the receiver unchanged.
func (i *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if err := i.UnmarshalText(data); err != nil {
		return fmt.Errorf("bignum: json: %w", err)
	}
	return nil
}

// EncodeMsgpack writes the canonical decimal text as a msgpack string.
func (i BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

// DecodeMsgpack reads a msgpack string holding decimal text.
func (i *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseInt(s)
	if err != nil {
		return fmt.Errorf("bignum: msgpack: %w", err)
	}
	*i = v
	return nil
}
