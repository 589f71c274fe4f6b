package dispatch

import (
	"github.com/0xRampey/hyperlane-monorepo/abi"
)

// Table maps selectors to function schemas and topic identifiers to event
// schemas. Overloads and cross-contract collisions are expected: each key
// holds a candidate list in registration order, and registration appends,
// never overwrites. A Table is not safe for concurrent registration; once
// populated it is read-only and lookups need no locking.
type Table struct {
	calls  map[abi.Selector][]*abi.Schema
	events map[abi.Word][]*abi.EventSchema
}

// NewTable returns an empty dispatch table.
func NewTable() *Table {
	return &Table{
		calls:  make(map[abi.Selector][]*abi.Schema),
		events: make(map[abi.Word][]*abi.EventSchema),
	}
}

// RegisterCall adds a function schema under its selector.
func (t *Table) RegisterCall(s *abi.Schema) {
	sel := s.Selector()
	t.calls[sel] = append(t.calls[sel], s)
}

// RegisterEvent adds an event schema under its topic identifier.
func (t *Table) RegisterEvent(e *abi.EventSchema) {
	topic := e.TopicID()
	t.events[topic] = append(t.events[topic], e)
}

// RegisterInterface adds every function and event of a parsed ABI document,
// in declaration order.
func (t *Table) RegisterInterface(iface *abi.Interface) {
	for _, s := range iface.Functions {
		t.RegisterCall(s)
	}
	for _, e := range iface.Events {
		t.RegisterEvent(e)
	}
}

// CallsFor returns the candidate functions registered under sel, in
// registration order. The returned slice is shared; callers must not modify
// it.
func (t *Table) CallsFor(sel abi.Selector) []*abi.Schema {
	return t.calls[sel]
}

// EventsFor returns the candidate events registered under topic, in
// registration order.
func (t *Table) EventsFor(topic abi.Word) []*abi.EventSchema {
	return t.events[topic]
}

// Calls returns every registered function schema.
func (t *Table) Calls() []*abi.Schema {
	var out []*abi.Schema
	for _, list := range t.calls {
		out = append(out, list...)
	}
	return out
}

// Events returns every registered event schema.
func (t *Table) Events() []*abi.EventSchema {
	var out []*abi.EventSchema
	for _, list := range t.events {
		out = append(out, list...)
	}
	return out
}
