package expr

import (
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"bigint/internal/bignum"
)

// Kind tells which field of a Result is set.
type Kind uint8

const (
	KindValue Kind = iota + 1
	KindBool
)

// Result is either an integer value (arithmetic) or a truth value
// (comparison).
type Result struct {
	Kind  Kind
	Value bignum.BigInt
	Truth bool
}

// ValueResult wraps an integer.
func ValueResult(v bignum.BigInt) Result { return Result{Kind: KindValue, Value: v} }

// BoolResult wraps a comparison outcome.
func BoolResult(b bool) Result { return Result{Kind: KindBool, Truth: b} }

func (r Result) String() string {
	switch r.Kind {
	case KindValue:
		return r.Value.String()
	case KindBool:
		return strconv.FormatBool(r.Truth)
	default:
		return ""
	}
}

// MarshalJSON emits a JSON number for values and true/false for comparisons.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindValue:
		return r.Value.MarshalJSON()
	case KindBool:
		return []byte(strconv.FormatBool(r.Truth)), nil
	default:
		return []byte("null"), nil
	}
}

// EncodeMsgpack writes values as decimal strings and comparisons as bools.
func (r Result) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch r.Kind {
	case KindValue:
		return r.Value.EncodeMsgpack(enc)
	case KindBool:
		return enc.EncodeBool(r.Truth)
	default:
		return enc.EncodeNil()
	}
}
