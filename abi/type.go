package abi

import (
	"strconv"
	"strings"

	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// WordSize is the width of one ABI head slot in bytes.
const WordSize = 32

// Word is one 32-byte ABI word, also used for event topics.
type Word [WordSize]byte

// Address is a 20-byte account address.
type Address [20]byte

// Selector is the 4-byte function selector prefixed to calldata.
type Selector [4]byte

func (w Word) Hex() string     { return "0x" + hexString(w[:]) }
func (a Address) Hex() string  { return "0x" + hexString(a[:]) }
func (s Selector) Hex() string { return "0x" + hexString(s[:]) }

// WordFromBytes builds a Word from b, right-aligned and zero-padded on the
// left. Input longer than 32 bytes keeps the trailing 32.
func WordFromBytes(b []byte) Word {
	var w Word
	if len(b) > WordSize {
		b = b[len(b)-WordSize:]
	}
	copy(w[WordSize-len(b):], b)
	return w
}

// Kind discriminates the type descriptor variants.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindAddress
	KindFixedBytes
	KindBytes
	KindString
	KindFixedArray
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "fixed bytes"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return "fixed array"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Field is one named member of a tuple type.
type Field struct {
	Name string
	Type Type
}

// Type is the canonical descriptor of an ABI value's type. Descriptors are
// immutable once constructed and shared freely across goroutines.
type Type struct {
	Elem   *Type   // FixedArray/Array element type
	Fields []Field // Tuple members
	Bits   int     // Uint/Int width in bits
	Size   int     // FixedBytes byte length or FixedArray element count
	Kind   Kind
}

func BoolType() Type   { return Type{Kind: KindBool} }
func BytesType() Type  { return Type{Kind: KindBytes} }
func StringType() Type { return Type{Kind: KindString} }

func AddressType() Type { return Type{Kind: KindAddress} }

// UintType returns an unsigned integer descriptor. Legal widths are
// multiples of 8 from 8 to 256.
func UintType(bits int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, errors.InvalidType("uint width %d: must be a multiple of 8 in [8,256]", bits)
	}
	return Type{Kind: KindUint, Bits: bits}, nil
}

// IntType returns a signed integer descriptor with the same width rules as
// UintType.
func IntType(bits int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, errors.InvalidType("int width %d: must be a multiple of 8 in [8,256]", bits)
	}
	return Type{Kind: KindInt, Bits: bits}, nil
}

// FixedBytesType returns a bytesN descriptor for n in [1,32].
func FixedBytesType(n int) (Type, error) {
	if n < 1 || n > 32 {
		return Type{}, errors.InvalidType("bytes%d: fixed length must be in [1,32]", n)
	}
	return Type{Kind: KindFixedBytes, Size: n}, nil
}

// FixedArrayType returns a T[n] descriptor for n >= 1. Zero-length fixed
// arrays are rejected, as in Solidity.
func FixedArrayType(elem Type, n int) (Type, error) {
	if n < 1 {
		return Type{}, errors.InvalidType("array length %d: must be positive", n)
	}
	e := elem
	return Type{Kind: KindFixedArray, Elem: &e, Size: n}, nil
}

// ArrayType returns a T[] descriptor.
func ArrayType(elem Type) Type {
	e := elem
	return Type{Kind: KindArray, Elem: &e}
}

// TupleType returns a (T1,...,Tk) descriptor.
func TupleType(fields ...Field) Type {
	return Type{Kind: KindTuple, Fields: fields}
}

// String renders the canonical signature fragment for the type, e.g.
// "uint32", "bytes32", "(uint32,bytes)[2]". Parse is its inverse.
func (t Type) String() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint" + strconv.Itoa(t.Bits)
	case KindInt:
		return "int" + strconv.Itoa(t.Bits)
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return t.Elem.String() + "[" + strconv.Itoa(t.Size) + "]"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindTuple:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Type.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "invalid"
	}
}

// Equal reports structural equality. Tuple field names do not participate:
// two descriptors are equal exactly when they render the same canonical
// signature.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Bits != o.Bits || t.Size != o.Size {
		return false
	}
	if (t.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*o.Elem) {
		return false
	}
	if len(t.Fields) != len(o.Fields) {
		return false
	}
	for i := range t.Fields {
		if !t.Fields[i].Type.Equal(o.Fields[i].Type) {
			return false
		}
	}
	return true
}

// IsDynamic reports whether the type uses tail encoding: bytes, string,
// T[], T[k] with dynamic T, and tuples with any dynamic member.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Elem.IsDynamic()
	case KindTuple:
		for _, f := range t.Fields {
			if f.Type.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headSize is the number of bytes the type occupies in its enclosing head
// region: one word for dynamic types (the offset) and for elementary static
// types, the packed size for static composites.
func (t Type) headSize() int {
	if t.IsDynamic() {
		return WordSize
	}
	switch t.Kind {
	case KindFixedArray:
		return t.Size * t.Elem.headSize()
	case KindTuple:
		total := 0
		for _, f := range t.Fields {
			total += f.Type.headSize()
		}
		return total
	default:
		return WordSize
	}
}

// Parse builds a descriptor from a canonical type string.
func Parse(s string) (Type, error) {
	if s == "" {
		return Type{}, errors.InvalidType("empty type string")
	}

	// Array suffixes bind outermost-last: "uint8[2][]" is an array of
	// uint8[2]. Strip the final group and recurse on the base.
	if strings.HasSuffix(s, "]") {
		open := strings.LastIndex(s, "[")
		if open < 1 {
			return Type{}, errors.InvalidType("malformed array type %q", s)
		}
		elem, err := Parse(s[:open])
		if err != nil {
			return Type{}, err
		}
		inner := s[open+1 : len(s)-1]
		if inner == "" {
			return ArrayType(elem), nil
		}
		n, err2 := strconv.Atoi(inner)
		if err2 != nil {
			return Type{}, errors.InvalidType("malformed array length in %q", s)
		}
		return FixedArrayType(elem, n)
	}

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return Type{}, errors.InvalidType("unterminated tuple %q", s)
		}
		parts, err := splitTopLevel(s[1 : len(s)-1])
		if err != nil {
			return Type{}, err
		}
		fields := make([]Field, len(parts))
		for i, p := range parts {
			ft, err := Parse(p)
			if err != nil {
				return Type{}, err
			}
			fields[i] = Field{Type: ft}
		}
		return TupleType(fields...), nil
	}

	switch {
	case s == "bool":
		return BoolType(), nil
	case s == "address":
		return AddressType(), nil
	case s == "string":
		return StringType(), nil
	case s == "bytes":
		return BytesType(), nil
	case s == "uint":
		return UintType(256)
	case s == "int":
		return IntType(256)
	case strings.HasPrefix(s, "uint"):
		bits, err := strconv.Atoi(s[4:])
		if err != nil {
			return Type{}, errors.InvalidType("malformed integer type %q", s)
		}
		return UintType(bits)
	case strings.HasPrefix(s, "int"):
		bits, err := strconv.Atoi(s[3:])
		if err != nil {
			return Type{}, errors.InvalidType("malformed integer type %q", s)
		}
		return IntType(bits)
	case strings.HasPrefix(s, "bytes"):
		n, err := strconv.Atoi(s[5:])
		if err != nil {
			return Type{}, errors.InvalidType("malformed bytes type %q", s)
		}
		return FixedBytesType(n)
	default:
		return Type{}, errors.InvalidType("unsupported type %q", s)
	}
}

// MustParse is Parse for statically known type strings; it panics on error.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// splitTopLevel splits a comma-separated type list, ignoring commas nested
// inside parentheses or brackets. An empty input yields no parts.
func splitTopLevel(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, errors.InvalidType("unbalanced brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.InvalidType("unbalanced brackets in %q", s)
	}
	parts = append(parts, s[start:])
	return parts, nil
}

const hexDigits = "0123456789abcdef"

func hexString(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0f]
	}
	return string(out)
}
