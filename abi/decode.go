package abi

import (
	"math/big"
	"strconv"

	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Decode deserializes an ABI head/tail block into one value per descriptor.
// The input is untrusted: every offset and length is bounds-checked before
// use, and malformed data yields an error rather than a panic or an
// out-of-range read. Trailing bytes beyond the encoded region are tolerated,
// since returndata is commonly padded.
func Decode(types []Type, data []byte) ([]Value, error) {
	values := make([]Value, len(types))
	pos := 0
	for i, t := range types {
		path := []string{argLabel(i)}
		if t.IsDynamic() {
			off, err := readOffset(data, pos, path)
			if err != nil {
				return nil, err
			}
			v, err := decodeTail(t, data[off:], path)
			if err != nil {
				return nil, err
			}
			values[i] = v
			pos += WordSize
			continue
		}
		v, err := decodeStatic(t, data, pos, path)
		if err != nil {
			return nil, err
		}
		values[i] = v
		pos += t.headSize()
	}
	return values, nil
}

// decodeStatic decodes a static value starting at pos. Elementary types
// consume one word, static composites consume their packed size.
func decodeStatic(t Type, data []byte, pos int, path []string) (Value, error) {
	switch t.Kind {
	case KindBool, KindUint, KindInt, KindAddress, KindFixedBytes:
		w, err := readWord(data, pos, path)
		if err != nil {
			return Value{}, err
		}
		return decodeWord(t, w, path)
	case KindFixedArray:
		elems := make([]Value, t.Size)
		for i := range elems {
			v, err := decodeStatic(*t.Elem, data, pos, childPath(path, "["+strconv.Itoa(i)+"]"))
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
			pos += t.Elem.headSize()
		}
		return Value{Kind: KindFixedArray, Elems: elems}, nil
	case KindTuple:
		elems := make([]Value, len(t.Fields))
		for i, f := range t.Fields {
			v, err := decodeStatic(f.Type, data, pos, childPath(path, fieldLabel(f, i)))
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
			pos += f.Type.headSize()
		}
		return Value{Kind: KindTuple, Elems: elems}, nil
	default:
		return Value{}, errors.InvalidData(errors.PhaseDecode, path, "dynamic type in static position")
	}
}

// decodeWord decodes a single-word elementary value.
func decodeWord(t Type, w Word, path []string) (Value, error) {
	switch t.Kind {
	case KindBool:
		for _, b := range w[:WordSize-1] {
			if b != 0 {
				return Value{}, errors.InvalidData(errors.PhaseDecode, path, "malformed bool word")
			}
		}
		switch w[WordSize-1] {
		case 0:
			return Value{Kind: KindBool, Bool: false}, nil
		case 1:
			return Value{Kind: KindBool, Bool: true}, nil
		default:
			return Value{}, errors.InvalidData(errors.PhaseDecode, path, "malformed bool word")
		}
	case KindUint:
		x := new(big.Int).SetBytes(w[:])
		if x.BitLen() > t.Bits {
			return Value{}, errors.ValueRange(errors.PhaseDecode, path, x, t.String())
		}
		return Value{Kind: KindUint, Int: x}, nil
	case KindInt:
		x := new(big.Int).SetBytes(w[:])
		if w[0]&0x80 != 0 {
			x.Sub(x, twoPow256)
		}
		if !fitsSigned(x, t.Bits) {
			return Value{}, errors.ValueRange(errors.PhaseDecode, path, x, t.String())
		}
		return Value{Kind: KindInt, Int: x}, nil
	case KindAddress:
		b := make([]byte, 20)
		copy(b, w[WordSize-20:])
		return Value{Kind: KindAddress, Bytes: b}, nil
	case KindFixedBytes:
		b := make([]byte, t.Size)
		copy(b, w[:t.Size])
		return Value{Kind: KindFixedBytes, Bytes: b}, nil
	default:
		return Value{}, errors.InvalidData(errors.PhaseDecode, path, "non-elementary type "+t.String())
	}
}

// decodeTail decodes dynamic content whose block starts at data[0].
func decodeTail(t Type, data []byte, path []string) (Value, error) {
	switch t.Kind {
	case KindBytes:
		b, err := readSized(data, path)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBytes, Bytes: b}, nil
	case KindString:
		b, err := readSized(data, path)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: string(b)}, nil
	case KindArray:
		n, err := readLength(data, 0, path)
		if err != nil {
			return Value{}, err
		}
		// Every element owns at least one head word: cap the count before
		// allocating on a declared length.
		if n > uint64(len(data)-WordSize)/WordSize {
			return Value{}, errors.LengthOverflow(path, n, uint64(len(data)-WordSize)/WordSize)
		}
		elems, err := Decode(repeatType(*t.Elem, int(n)), data[WordSize:])
		if err != nil {
			return Value{}, pathPrefix(err, path)
		}
		return Value{Kind: KindArray, Elems: elems}, nil
	case KindFixedArray:
		elems, err := Decode(repeatType(*t.Elem, t.Size), data)
		if err != nil {
			return Value{}, pathPrefix(err, path)
		}
		return Value{Kind: KindFixedArray, Elems: elems}, nil
	case KindTuple:
		types := make([]Type, len(t.Fields))
		for i, f := range t.Fields {
			types[i] = f.Type
		}
		elems, err := Decode(types, data)
		if err != nil {
			return Value{}, pathPrefix(err, path)
		}
		return Value{Kind: KindTuple, Elems: elems}, nil
	default:
		return Value{}, errors.InvalidData(errors.PhaseDecode, path, "static type in tail position")
	}
}

// readSized reads a length word followed by that many content bytes.
func readSized(data []byte, path []string) ([]byte, error) {
	n, err := readLength(data, 0, path)
	if err != nil {
		return nil, err
	}
	if n > uint64(len(data)-WordSize) {
		return nil, errors.LengthOverflow(path, n, uint64(len(data)-WordSize))
	}
	b := make([]byte, n)
	copy(b, data[WordSize:WordSize+int(n)])
	return b, nil
}

// readWord reads one word at pos.
func readWord(data []byte, pos int, path []string) (Word, error) {
	var w Word
	if pos < 0 || len(data) < pos+WordSize {
		return w, errors.DataTooShort(path, pos+WordSize, len(data))
	}
	copy(w[:], data[pos:pos+WordSize])
	return w, nil
}

// readOffset reads a tail offset at pos and verifies it lands inside data.
// Offsets wider than 63 bits are rejected outright so later arithmetic
// cannot overflow.
func readOffset(data []byte, pos int, path []string) (int, error) {
	w, err := readWord(data, pos, path)
	if err != nil {
		return 0, err
	}
	x := new(big.Int).SetBytes(w[:])
	if x.BitLen() > 63 {
		return 0, errors.OffsetRange(path, 0, uint64(len(data)))
	}
	off := x.Uint64()
	// The tail must hold at least one word at the offset.
	if off+WordSize > uint64(len(data)) {
		return 0, errors.OffsetRange(path, off, uint64(len(data)))
	}
	return int(off), nil
}

// readLength reads a declared element or byte count at pos.
func readLength(data []byte, pos int, path []string) (uint64, error) {
	w, err := readWord(data, pos, path)
	if err != nil {
		return 0, err
	}
	x := new(big.Int).SetBytes(w[:])
	if x.BitLen() > 63 {
		return 0, errors.LengthOverflow(path, 0, uint64(len(data)))
	}
	return x.Uint64(), nil
}

func fieldLabel(f Field, i int) string {
	if f.Name != "" {
		return f.Name
	}
	return "[" + strconv.Itoa(i) + "]"
}

// pathPrefix re-labels errors surfacing from a sub-block decode, whose own
// paths start from the block root, with the enclosing value's path.
func pathPrefix(err error, path []string) error {
	if e, ok := err.(*errors.Error); ok && len(path) > 0 {
		e.Path = append(append([]string{}, path...), e.Path...)
	}
	return err
}
