package abi

import "strings"

// Mutability classifies a function's effect on contract state.
type Mutability int

const (
	// View covers view and pure functions, callable without a transaction.
	View Mutability = iota
	// NonPayable mutates state but rejects attached value.
	NonPayable
	// Payable mutates state and accepts attached value.
	Payable
)

func (m Mutability) String() string {
	switch m {
	case View:
		return "view"
	case NonPayable:
		return "nonpayable"
	case Payable:
		return "payable"
	default:
		return "mutability(?)"
	}
}

// Param is a named function input.
type Param struct {
	Name string
	Type Type
}

// Schema describes one function: its name, parameters, return types and
// mutability. The selector is fixed at construction from the canonical
// signature.
type Schema struct {
	Name       string
	Inputs     []Param
	Outputs    []Type
	Mutability Mutability

	selector Selector
}

// NewSchema builds a function schema and computes its selector.
func NewSchema(name string, inputs []Param, outputs []Type, mut Mutability) *Schema {
	s := &Schema{Name: name, Inputs: inputs, Outputs: outputs, Mutability: mut}
	sig := s.Signature()
	hash := Keccak256([]byte(sig))
	copy(s.selector[:], hash[:4])
	return s
}

// Signature renders the canonical form hashed for the selector,
// e.g. "dispatch(uint32,bytes32,bytes)". Parameter names do not
// participate.
func (s *Schema) Signature() string {
	parts := make([]string, len(s.Inputs))
	for i, p := range s.Inputs {
		parts[i] = p.Type.String()
	}
	return s.Name + "(" + strings.Join(parts, ",") + ")"
}

// Selector returns the first four bytes of the signature hash.
func (s *Schema) Selector() Selector { return s.selector }

// InputTypes returns the parameter descriptors in declaration order.
func (s *Schema) InputTypes() []Type {
	types := make([]Type, len(s.Inputs))
	for i, p := range s.Inputs {
		types[i] = p.Type
	}
	return types
}

// Encode produces complete calldata: the selector followed by the
// ABI-encoded arguments.
func (s *Schema) Encode(args []Value) ([]byte, error) {
	body, err := Encode(s.InputTypes(), args)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(s.selector)+len(body))
	out = append(out, s.selector[:]...)
	return append(out, body...), nil
}

// DecodeArgs decodes an argument block that follows the selector in
// calldata. The caller strips the selector first.
func (s *Schema) DecodeArgs(data []byte) ([]Value, error) {
	return Decode(s.InputTypes(), data)
}

// DecodeOutputs decodes returndata against the declared return types.
func (s *Schema) DecodeOutputs(data []byte) ([]Value, error) {
	return Decode(s.Outputs, data)
}

// EventField is one event parameter. Indexed fields travel in the log's
// topic list rather than its data section.
type EventField struct {
	Name    string
	Type    Type
	Indexed bool
}

// EventSchema describes one event. Its topic identifier is the full
// signature hash, fixed at construction.
type EventSchema struct {
	Name   string
	Fields []EventField

	topic Word
}

// NewEventSchema builds an event schema and computes its topic identifier.
func NewEventSchema(name string, fields []EventField) *EventSchema {
	e := &EventSchema{Name: name, Fields: fields}
	e.topic = Keccak256([]byte(e.Signature()))
	return e
}

// Signature renders the canonical form hashed for topic zero. Indexed-ness
// and field names do not participate.
func (e *EventSchema) Signature() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Type.String()
	}
	return e.Name + "(" + strings.Join(parts, ",") + ")"
}

// TopicID returns the full 32-byte signature hash carried as topic zero.
func (e *EventSchema) TopicID() Word { return e.topic }

// NumIndexed counts the fields carried as topics.
func (e *EventSchema) NumIndexed() int {
	n := 0
	for _, f := range e.Fields {
		if f.Indexed {
			n++
		}
	}
	return n
}
