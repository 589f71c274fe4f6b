package abi

import (
	"bytes"
	"math/big"
	"strconv"

	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Value is the runtime counterpart of a Type descriptor: a tagged variant
// holding actual data. A Value's shape must structurally match the
// descriptor it is encoded against; mismatch is a caller bug surfaced as an
// encode-phase error, never a panic.
type Value struct {
	Int    *big.Int // Uint, Int
	Bytes  []byte   // Address, FixedBytes, Bytes
	Str    string   // String
	Elems  []Value  // FixedArray, Array, Tuple
	Kind   Kind
	Bool   bool
	Hashed bool // indexed dynamic event field: Bytes holds the 32-byte digest
}

func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// UintValue wraps a non-negative big integer as an unsigned value. The input
// is copied.
func UintValue(x *big.Int) Value {
	return Value{Kind: KindUint, Int: new(big.Int).Set(x)}
}

func Uint8Value(x uint8) Value   { return Value{Kind: KindUint, Int: new(big.Int).SetUint64(uint64(x))} }
func Uint32Value(x uint32) Value { return Value{Kind: KindUint, Int: new(big.Int).SetUint64(uint64(x))} }
func Uint64Value(x uint64) Value { return Value{Kind: KindUint, Int: new(big.Int).SetUint64(x)} }

// IntValue wraps a signed big integer. The input is copied.
func IntValue(x *big.Int) Value {
	return Value{Kind: KindInt, Int: new(big.Int).Set(x)}
}

func Int64Value(x int64) Value { return Value{Kind: KindInt, Int: big.NewInt(x)} }

func AddressValue(a Address) Value {
	return Value{Kind: KindAddress, Bytes: append([]byte(nil), a[:]...)}
}

// FixedBytesValue wraps b as a bytesN value with N = len(b). The input is
// copied.
func FixedBytesValue(b []byte) Value {
	return Value{Kind: KindFixedBytes, Bytes: append([]byte(nil), b...)}
}

// WordValue wraps a full 32-byte word as a bytes32 value.
func WordValue(w Word) Value {
	return Value{Kind: KindFixedBytes, Bytes: append([]byte(nil), w[:]...)}
}

// BytesValue wraps b as a dynamic bytes value. The input is copied.
func BytesValue(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: append([]byte(nil), b...)}
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// HashedValue wraps the 32-byte digest an indexed reference-typed event
// field leaves in its topic. The original content is unrecoverable.
func HashedValue(k Kind, digest Word) Value {
	return Value{Kind: k, Bytes: append([]byte(nil), digest[:]...), Hashed: true}
}

func ArrayValue(elems ...Value) Value      { return Value{Kind: KindArray, Elems: elems} }
func FixedArrayValue(elems ...Value) Value { return Value{Kind: KindFixedArray, Elems: elems} }
func TupleValue(elems ...Value) Value      { return Value{Kind: KindTuple, Elems: elems} }

// Uint64 extracts an unsigned value that fits in 64 bits.
func (v Value) Uint64() (uint64, bool) {
	if v.Kind != KindUint || v.Int == nil || !v.Int.IsUint64() {
		return 0, false
	}
	return v.Int.Uint64(), true
}

// BigInt returns a copy of the integer payload of a Uint or Int value.
func (v Value) BigInt() (*big.Int, bool) {
	if (v.Kind != KindUint && v.Kind != KindInt) || v.Int == nil {
		return nil, false
	}
	return new(big.Int).Set(v.Int), true
}

// Address extracts an address payload.
func (v Value) Address() (Address, bool) {
	var a Address
	if v.Kind != KindAddress || len(v.Bytes) != len(a) {
		return a, false
	}
	copy(a[:], v.Bytes)
	return a, true
}

// Word extracts a bytes32 payload (including hashed event fields).
func (v Value) Word() (Word, bool) {
	var w Word
	if len(v.Bytes) != WordSize {
		return w, false
	}
	copy(w[:], v.Bytes)
	return w, true
}

// Text extracts a string payload.
func (v Value) Text() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// String renders the value for diagnostics. It is not a wire format.
func (v Value) String() string {
	if v.Hashed {
		return "hash(0x" + hexString(v.Bytes) + ")"
	}
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindUint, KindInt:
		if v.Int == nil {
			return "<nil int>"
		}
		return v.Int.String()
	case KindAddress, KindFixedBytes, KindBytes:
		return "0x" + hexString(v.Bytes)
	case KindString:
		return strconv.Quote(v.Str)
	case KindFixedArray, KindArray, KindTuple:
		opener, closer := "[", "]"
		if v.Kind == KindTuple {
			opener, closer = "(", ")"
		}
		out := opener
		for i, e := range v.Elems {
			if i > 0 {
				out += ", "
			}
			out += e.String()
		}
		return out + closer
	default:
		return "<invalid>"
	}
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind || v.Hashed != o.Hashed {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == o.Bool
	case KindUint, KindInt:
		if v.Int == nil || o.Int == nil {
			return v.Int == o.Int
		}
		return v.Int.Cmp(o.Int) == 0
	case KindAddress, KindFixedBytes, KindBytes:
		return bytes.Equal(v.Bytes, o.Bytes)
	case KindString:
		return v.Str == o.Str
	case KindFixedArray, KindArray, KindTuple:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Check validates that the value's shape matches the descriptor, including
// integer ranges and fixed lengths.
func (v Value) Check(t Type) error {
	return v.check(t, nil)
}

func (v Value) check(t Type, path []string) error {
	if v.Kind != t.Kind {
		return errors.TypeMismatch(errors.PhaseEncode, path, v.Kind.String(), t.String())
	}
	switch t.Kind {
	case KindUint:
		if v.Int == nil || v.Int.Sign() < 0 || v.Int.BitLen() > t.Bits {
			return errors.ValueRange(errors.PhaseEncode, path, v.Int, t.String())
		}
	case KindInt:
		if v.Int == nil || !fitsSigned(v.Int, t.Bits) {
			return errors.ValueRange(errors.PhaseEncode, path, v.Int, t.String())
		}
	case KindAddress:
		if len(v.Bytes) != 20 {
			return errors.ValueRange(errors.PhaseEncode, path, len(v.Bytes), t.String())
		}
	case KindFixedBytes:
		if len(v.Bytes) != t.Size {
			return errors.ValueRange(errors.PhaseEncode, path, len(v.Bytes), t.String())
		}
	case KindFixedArray:
		if len(v.Elems) != t.Size {
			return errors.CountMismatch(errors.PhaseEncode, path, len(v.Elems), t.Size)
		}
		for i, e := range v.Elems {
			if err := e.check(*t.Elem, childPath(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
	case KindArray:
		for i, e := range v.Elems {
			if err := e.check(*t.Elem, childPath(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
	case KindTuple:
		if len(v.Elems) != len(t.Fields) {
			return errors.CountMismatch(errors.PhaseEncode, path, len(v.Elems), len(t.Fields))
		}
		for i, e := range v.Elems {
			name := t.Fields[i].Name
			if name == "" {
				name = "[" + strconv.Itoa(i) + "]"
			}
			if err := e.check(t.Fields[i].Type, childPath(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func fitsSigned(x *big.Int, bits int) bool {
	// Range is [-2^(bits-1), 2^(bits-1)-1].
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if x.Sign() < 0 {
		return x.CmpAbs(limit) <= 0
	}
	return x.Cmp(limit) < 0
}

func childPath(path []string, elem string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, elem)
}
