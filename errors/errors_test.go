package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseEncode,
				Kind:    KindTypeMismatch,
				Path:    []string{"arg[1]", "recipient"},
				AbiType: "bytes32",
				Detail:  "have string",
			},
			contains: []string{"[encode]", "type_mismatch", "arg[1].recipient", "bytes32", "have string"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindDataTooShort,
			},
			contains: []string{"[decode]", "data_too_short"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDispatch,
				Kind:   KindNoMatchingSchema,
				Detail: "selector fa31de01",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[dispatch]", "no_matching_schema", "selector fa31de01", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseDecode, Kind: KindOffsetRange, Detail: "x"}
	b := &Error{Phase: PhaseDecode, Kind: KindOffsetRange}
	c := &Error{Phase: PhaseEncode, Kind: KindOffsetRange}

	if !errors.Is(a, b) {
		t.Error("same phase+kind should match")
	}
	if errors.Is(a, c) {
		t.Error("different phase should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindLengthOverflow).
		Path("arg[0]").
		AbiType("bytes").
		Value(uint64(1 << 40)).
		Detail("declared length %d", 1<<40).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindLengthOverflow {
		t.Fatalf("builder lost phase/kind: %v", err)
	}
	if err.Value.(uint64) != 1<<40 {
		t.Errorf("builder lost value: %v", err.Value)
	}
	if !strings.Contains(err.Error(), "1099511627776") {
		t.Errorf("detail not formatted: %s", err.Error())
	}
}

func TestCategoryHelpers(t *testing.T) {
	schemaErr := InvalidType("bit width %d not a multiple of 8", 13)
	encodeErr := TypeMismatch(PhaseEncode, nil, "bool", "uint32")
	decodeErr := DataTooShort(nil, 32, 4)
	dispatchErr := NoMatchingSchema("selector %x unknown", []byte{1, 2, 3, 4})

	if !IsSchemaError(schemaErr) || IsSchemaError(encodeErr) {
		t.Error("IsSchemaError misclassified")
	}
	if !IsEncodingError(encodeErr) || IsEncodingError(decodeErr) {
		t.Error("IsEncodingError misclassified")
	}
	if !IsDecodingError(decodeErr) || IsDecodingError(dispatchErr) {
		t.Error("IsDecodingError misclassified")
	}
	if !IsNoMatchingSchema(dispatchErr) || IsNoMatchingSchema(decodeErr) {
		t.Error("IsNoMatchingSchema misclassified")
	}
}

func TestCategoryHelpers_Wrapped(t *testing.T) {
	inner := DataTooShort(nil, 64, 0)
	outer := Wrap(PhaseDispatch, KindNoMatchingSchema, inner, "no candidate decoded")

	if !IsDecodingError(outer) {
		t.Error("wrapped decode error not detected through cause chain")
	}
}
