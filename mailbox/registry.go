package mailbox

import (
	"sync"

	"github.com/0xRampey/hyperlane-monorepo"
	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/dispatch"
	"github.com/0xRampey/hyperlane-monorepo/errors"
)

type registry struct {
	iface  *abi.Interface
	table  *dispatch.Table
	byName map[string][]*abi.Schema
	events map[string]*abi.EventSchema
}

var (
	reg     *registry
	regOnce sync.Once
)

// load builds the registry from the embedded ABI on first use. The document
// is compile-time trusted; a parse failure is a build defect and panics.
func load() *registry {
	regOnce.Do(func() {
		iface := abi.MustParseInterface([]byte(mailboxABI))
		table := dispatch.NewTable()
		table.RegisterInterface(iface)

		byName := make(map[string][]*abi.Schema)
		for _, s := range iface.Functions {
			byName[s.Name] = append(byName[s.Name], s)
		}
		events := make(map[string]*abi.EventSchema, len(iface.Events))
		for _, e := range iface.Events {
			events[e.Name] = e
		}
		reg = &registry{iface: iface, table: table, byName: byName, events: events}
	})
	return reg
}

// Interface returns the parsed Mailbox ABI.
func Interface() *abi.Interface { return load().iface }

// Table returns the dispatch table covering every Mailbox function and
// event. It is read-only.
func Table() *dispatch.Table { return load().table }

// Schemas returns the overload set registered under a function name, in
// declaration order.
func Schemas(name string) []*abi.Schema { return load().byName[name] }

// EventSchema returns the event schema with the given name.
func EventSchema(name string) (*abi.EventSchema, error) {
	e, ok := load().events[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseSchema, "event", name)
	}
	return e, nil
}

// EncodeCall builds calldata for the named function. Overloads are resolved
// against the arguments in declaration order: the first overload the
// arguments encode under wins, so dispatch with three arguments picks
// dispatch(uint32,bytes32,bytes).
func EncodeCall(name string, args ...abi.Value) ([]byte, error) {
	overloads := Schemas(name)
	if len(overloads) == 0 {
		return nil, errors.NotFound(errors.PhaseEncode, "function", name)
	}
	var lastErr error
	for _, s := range overloads {
		if len(s.Inputs) != len(args) {
			continue
		}
		data, err := s.Encode(args)
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.CountMismatch(errors.PhaseEncode, []string{name}, len(args), len(overloads[0].Inputs))
}

// DecodeResult decodes returndata of the named function. All Mailbox
// overloads of a name share one output shape, so the first schema serves.
func DecodeResult(name string, data []byte) ([]abi.Value, error) {
	overloads := Schemas(name)
	if len(overloads) == 0 {
		return nil, errors.NotFound(errors.PhaseDecode, "function", name)
	}
	return overloads[0].DecodeOutputs(data)
}

// DecodeCall identifies and decodes Mailbox calldata.
func DecodeCall(data []byte) (*dispatch.Call, error) {
	return Table().DecodeCall(data)
}

// DecodeLog identifies and decodes a Mailbox log.
func DecodeLog(log hyperlane.Log) (*dispatch.Event, error) {
	return Table().DecodeLog(log.Topics, log.Data)
}
