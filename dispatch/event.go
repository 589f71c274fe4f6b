package dispatch

import (
	"go.uber.org/zap"

	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Event is a decoded log: the schema that matched plus one value per field
// in declaration order. Indexed fields of reference type (bytes, string,
// arrays, tuples) cannot be recovered from a log; they carry the 32-byte
// topic digest with Hashed set.
type Event struct {
	Schema *abi.EventSchema
	Fields []abi.Value
}

// Field returns the decoded field with the given name.
func (e *Event) Field(name string) (abi.Value, bool) {
	for i, f := range e.Schema.Fields {
		if f.Name == name {
			return e.Fields[i], true
		}
	}
	return abi.Value{}, false
}

// DecodeLog identifies and decodes a log against the table. Candidates
// registered under topic zero are tried in registration order; a candidate
// whose indexed count disagrees with the topic list, or whose data section
// fails to decode, is skipped.
func (t *Table) DecodeLog(topics []abi.Word, data []byte) (*Event, error) {
	if len(topics) == 0 {
		return nil, errors.NoMatchingSchema("log has no topics")
	}

	candidates := t.EventsFor(topics[0])
	if len(candidates) == 0 {
		return nil, errors.NoMatchingSchema("no event registered for topic %s", topics[0].Hex())
	}

	var lastErr error
	for _, e := range candidates {
		ev, err := decodeEvent(e, topics, data)
		if err != nil {
			Logger().Debug("event candidate rejected",
				zap.String("signature", e.Signature()),
				zap.Error(err))
			lastErr = err
			continue
		}
		return ev, nil
	}
	// Topic zero matched but no candidate's fields decoded; surface the
	// decode failure rather than pretending the event is unknown.
	return nil, lastErr
}

func decodeEvent(e *abi.EventSchema, topics []abi.Word, data []byte) (*Event, error) {
	if len(topics) != 1+e.NumIndexed() {
		return nil, errors.TopicMismatch(e.Name, len(topics), 1+e.NumIndexed())
	}

	var dataTypes []abi.Type
	for _, f := range e.Fields {
		if !f.Indexed {
			dataTypes = append(dataTypes, f.Type)
		}
	}
	dataVals, err := abi.Decode(dataTypes, data)
	if err != nil {
		return nil, err
	}

	fields := make([]abi.Value, len(e.Fields))
	topicIdx := 1
	dataIdx := 0
	for i, f := range e.Fields {
		if !f.Indexed {
			fields[i] = dataVals[dataIdx]
			dataIdx++
			continue
		}
		topic := topics[topicIdx]
		topicIdx++
		if hashedInTopic(f.Type) {
			fields[i] = abi.HashedValue(f.Type.Kind, topic)
			continue
		}
		vals, err := abi.Decode([]abi.Type{f.Type}, topic[:])
		if err != nil {
			return nil, err
		}
		fields[i] = vals[0]
	}
	return &Event{Schema: e, Fields: fields}, nil
}

// hashedInTopic reports whether an indexed field of this type is stored as
// its digest rather than in place. Only single-word elementary types fit a
// topic verbatim.
func hashedInTopic(t abi.Type) bool {
	switch t.Kind {
	case abi.KindBool, abi.KindUint, abi.KindInt, abi.KindAddress, abi.KindFixedBytes:
		return false
	default:
		return true
	}
}
