package abi

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"bool",
		"uint8",
		"uint32",
		"uint256",
		"int128",
		"address",
		"bytes1",
		"bytes32",
		"bytes",
		"string",
		"uint32[]",
		"bytes32[4]",
		"address[2][]",
		"(uint32,bytes32,bytes)",
		"(address,(uint8,bool)[3])[]",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			typ, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q): %v", src, err)
			}
			if got := typ.String(); got != src {
				t.Errorf("String() = %q, want %q", got, src)
			}
		})
	}
}

func TestParseAliases(t *testing.T) {
	cases := map[string]string{
		"uint": "uint256",
		"int":  "int256",
	}
	for src, want := range cases {
		typ, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if got := typ.String(); got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", src, got, want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"uint7",
		"uint264",
		"int0",
		"bytes0",
		"bytes33",
		"uint32[",
		"uint32[-1]",
		"uint32[0]",
		"bytes[0]",
		"uint32[2",
		"(uint32",
		"(uint32,)",
		"elephant",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			if _, err := Parse(src); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", src)
			}
		})
	}
}

func TestFixedArrayTypeRejectsZeroLength(t *testing.T) {
	// A bytes[0] head would carry an offset into an empty tail, which the
	// decoder cannot distinguish from truncated data. Solidity forbids the
	// type outright, so construction fails here as well.
	if _, err := FixedArrayType(BytesType(), 0); err == nil {
		t.Error("FixedArrayType(bytes, 0) succeeded, want error")
	}
	if _, err := FixedArrayType(MustParse("uint32"), 0); err == nil {
		t.Error("FixedArrayType(uint32, 0) succeeded, want error")
	}
}

func TestIsDynamic(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"uint256", false},
		{"address", false},
		{"bytes32", false},
		{"bytes", true},
		{"string", true},
		{"uint32[]", true},
		{"uint32[4]", false},
		{"bytes[4]", true},
		{"(uint32,address)", false},
		{"(uint32,bytes)", true},
	}
	for _, tc := range cases {
		typ := MustParse(tc.src)
		if got := typ.IsDynamic(); got != tc.want {
			t.Errorf("%s: IsDynamic() = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestHeadSize(t *testing.T) {
	cases := []struct {
		src  string
		want int
	}{
		{"uint256", 32},
		{"bytes", 32},
		{"uint32[4]", 128},
		{"(uint32,address,bool)", 96},
		{"(uint32,bytes)", 32},
		{"uint8[2][3]", 192},
	}
	for _, tc := range cases {
		typ := MustParse(tc.src)
		if got := typ.headSize(); got != tc.want {
			t.Errorf("%s: headSize() = %d, want %d", tc.src, got, tc.want)
		}
	}
}

func TestTypeEqualIgnoresFieldNames(t *testing.T) {
	a := TupleType(Field{Name: "x", Type: MustParse("uint32")})
	b := TupleType(Field{Name: "y", Type: MustParse("uint32")})
	if !a.Equal(b) {
		t.Error("tuples differing only in field names should be equal")
	}
	c := TupleType(Field{Type: MustParse("uint64")})
	if a.Equal(c) {
		t.Error("tuples with different member types should not be equal")
	}
}
