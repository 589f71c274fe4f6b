package abi

import (
	"math/big"
	"strconv"

	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Encode serializes values against their descriptors using the ABI
// head/tail layout: every top-level value owns one head slot in argument
// order; static values sit inline, dynamic values leave a byte offset in the
// head and append length-prefixed content to the tail. Nested dynamic
// content recurses with offsets relative to its own sub-block.
func Encode(types []Type, values []Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, errors.CountMismatch(errors.PhaseEncode, nil, len(values), len(types))
	}
	for i, t := range types {
		if err := values[i].check(t, []string{argLabel(i)}); err != nil {
			return nil, err
		}
	}
	return encodeBlock(types, values), nil
}

// encodeBlock lays out one head/tail region. Values are assumed to have
// passed shape checks.
func encodeBlock(types []Type, values []Value) []byte {
	headSize := 0
	for _, t := range types {
		headSize += t.headSize()
	}

	head := make([]byte, 0, headSize)
	var tail []byte
	for i, t := range types {
		if t.IsDynamic() {
			head = append(head, uintWord(uint64(headSize+len(tail)))...)
			tail = append(tail, encodeTail(t, values[i])...)
			continue
		}
		head = append(head, encodeStatic(t, values[i])...)
	}
	return append(head, tail...)
}

// encodeStatic encodes a static value inline: elementary types occupy one
// word, static composites pack their members in order.
func encodeStatic(t Type, v Value) []byte {
	switch t.Kind {
	case KindBool:
		w := make([]byte, WordSize)
		if v.Bool {
			w[WordSize-1] = 1
		}
		return w
	case KindUint:
		return uintBigWord(v.Int)
	case KindInt:
		return intWord(v.Int)
	case KindAddress:
		w := make([]byte, WordSize)
		copy(w[WordSize-len(v.Bytes):], v.Bytes)
		return w
	case KindFixedBytes:
		w := make([]byte, WordSize)
		copy(w, v.Bytes)
		return w
	case KindFixedArray:
		out := make([]byte, 0, t.headSize())
		for _, e := range v.Elems {
			out = append(out, encodeStatic(*t.Elem, e)...)
		}
		return out
	case KindTuple:
		out := make([]byte, 0, t.headSize())
		for i, f := range t.Fields {
			out = append(out, encodeStatic(f.Type, v.Elems[i])...)
		}
		return out
	default:
		// Dynamic kinds never reach here; encodeBlock routes them to the tail.
		return nil
	}
}

// encodeTail encodes the tail content of a dynamic value.
func encodeTail(t Type, v Value) []byte {
	switch t.Kind {
	case KindBytes:
		return lengthPrefixed(v.Bytes)
	case KindString:
		return lengthPrefixed([]byte(v.Str))
	case KindArray:
		elemTypes := repeatType(*t.Elem, len(v.Elems))
		return append(uintWord(uint64(len(v.Elems))), encodeBlock(elemTypes, v.Elems)...)
	case KindFixedArray:
		return encodeBlock(repeatType(*t.Elem, t.Size), v.Elems)
	case KindTuple:
		types := make([]Type, len(t.Fields))
		for i, f := range t.Fields {
			types[i] = f.Type
		}
		return encodeBlock(types, v.Elems)
	default:
		return nil
	}
}

func lengthPrefixed(b []byte) []byte {
	out := append(uintWord(uint64(len(b))), b...)
	if pad := len(b) % WordSize; pad != 0 {
		out = append(out, make([]byte, WordSize-pad)...)
	}
	return out
}

func repeatType(t Type, n int) []Type {
	types := make([]Type, n)
	for i := range types {
		types[i] = t
	}
	return types
}

// uintWord encodes a small unsigned integer right-aligned in one word.
func uintWord(x uint64) []byte {
	w := make([]byte, WordSize)
	for i := 0; i < 8; i++ {
		w[WordSize-1-i] = byte(x >> (8 * i))
	}
	return w
}

// uintBigWord encodes a non-negative big integer right-aligned in one word.
func uintBigWord(x *big.Int) []byte {
	w := make([]byte, WordSize)
	b := x.Bytes()
	copy(w[WordSize-len(b):], b)
	return w
}

// intWord encodes a signed big integer as a 256-bit two's complement word.
func intWord(x *big.Int) []byte {
	if x.Sign() >= 0 {
		return uintBigWord(x)
	}
	// 2^256 + x for negative x.
	wrapped := new(big.Int).Add(twoPow256, x)
	return uintBigWord(wrapped)
}

var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

func argLabel(i int) string {
	return "arg[" + strconv.Itoa(i) + "]"
}
