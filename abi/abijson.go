package abi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Interface holds the schemas parsed from a contract's JSON ABI document,
// in declaration order.
type Interface struct {
	Constructor *Schema
	Functions   []*Schema
	Events      []*EventSchema
}

type jsonEntry struct {
	Type            string      `json:"type"`
	Name            string      `json:"name"`
	Inputs          []jsonParam `json:"inputs"`
	Outputs         []jsonParam `json:"outputs"`
	StateMutability string      `json:"stateMutability"`
	Anonymous       bool        `json:"anonymous"`
}

type jsonParam struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Components []jsonParam `json:"components"`
	Indexed    bool        `json:"indexed"`
}

// ParseInterface decodes a JSON ABI document. Entries of unknown type
// (errors, fallback, receive) are skipped; malformed type strings fail the
// parse.
func ParseInterface(doc []byte) (*Interface, error) {
	var entries []jsonEntry
	if err := json.Unmarshal(doc, &entries); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidSchema, err, "abi json")
	}

	iface := &Interface{}
	for _, e := range entries {
		switch e.Type {
		case "function":
			s, err := parseFunction(e)
			if err != nil {
				return nil, err
			}
			iface.Functions = append(iface.Functions, s)
		case "constructor":
			s, err := parseFunction(e)
			if err != nil {
				return nil, err
			}
			iface.Constructor = s
		case "event":
			ev, err := parseEvent(e)
			if err != nil {
				return nil, err
			}
			iface.Events = append(iface.Events, ev)
		}
	}
	return iface, nil
}

// MustParseInterface is ParseInterface for trusted compile-time documents.
func MustParseInterface(doc []byte) *Interface {
	iface, err := ParseInterface(doc)
	if err != nil {
		panic(err)
	}
	return iface
}

func parseFunction(e jsonEntry) (*Schema, error) {
	inputs := make([]Param, len(e.Inputs))
	for i, p := range e.Inputs {
		t, err := paramType(p)
		if err != nil {
			return nil, err
		}
		inputs[i] = Param{Name: p.Name, Type: t}
	}
	outputs := make([]Type, len(e.Outputs))
	for i, p := range e.Outputs {
		t, err := paramType(p)
		if err != nil {
			return nil, err
		}
		outputs[i] = t
	}
	return NewSchema(e.Name, inputs, outputs, parseMutability(e.StateMutability)), nil
}

func parseEvent(e jsonEntry) (*EventSchema, error) {
	fields := make([]EventField, len(e.Inputs))
	for i, p := range e.Inputs {
		t, err := paramType(p)
		if err != nil {
			return nil, err
		}
		fields[i] = EventField{Name: p.Name, Type: t, Indexed: p.Indexed}
	}
	return NewEventSchema(e.Name, fields), nil
}

func parseMutability(s string) Mutability {
	switch s {
	case "view", "pure":
		return View
	case "payable":
		return Payable
	default:
		return NonPayable
	}
}

// paramType resolves a parameter's descriptor. Tuples carry their member
// types in "components" rather than the type string, with any array
// suffixes still on the string.
func paramType(p jsonParam) (Type, error) {
	if !strings.HasPrefix(p.Type, "tuple") {
		return Parse(p.Type)
	}

	fields := make([]Field, len(p.Components))
	for i, c := range p.Components {
		t, err := paramType(c)
		if err != nil {
			return Type{}, err
		}
		fields[i] = Field{Name: c.Name, Type: t}
	}
	base := TupleType(fields...)
	return applyArraySuffix(base, p.Type[len("tuple"):])
}

// applyArraySuffix wraps base in the array layers spelled by suffix,
// e.g. "[2][]" in left-to-right order.
func applyArraySuffix(base Type, suffix string) (Type, error) {
	t := base
	rest := suffix
	for rest != "" {
		if rest[0] != '[' {
			return Type{}, errors.InvalidType("malformed array suffix %q", suffix)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Type{}, errors.InvalidType("malformed array suffix %q", suffix)
		}
		dim := rest[1:end]
		if dim == "" {
			t = ArrayType(t)
		} else {
			n, err := strconv.Atoi(dim)
			if err != nil || n < 0 {
				return Type{}, errors.InvalidType("malformed array size %q", dim)
			}
			fixed, err := FixedArrayType(t, n)
			if err != nil {
				return Type{}, err
			}
			t = fixed
		}
		rest = rest[end+1:]
	}
	return t, nil
}
