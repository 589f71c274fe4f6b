package dispatch

import (
	"go.uber.org/zap"

	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Call is a decoded function invocation: the schema that matched plus the
// decoded arguments in declaration order.
type Call struct {
	Schema *abi.Schema
	Args   []abi.Value
}

// Arg returns the decoded argument with the given parameter name.
func (c *Call) Arg(name string) (abi.Value, bool) {
	for i, p := range c.Schema.Inputs {
		if p.Name == name {
			return c.Args[i], true
		}
	}
	return abi.Value{}, false
}

// DecodeCall identifies and decodes calldata against the table. Candidates
// registered under the leading selector are tried in registration order and
// the first whose argument block decodes fully wins; with no candidate or no
// successful decode the result is a no_matching_schema error.
func (t *Table) DecodeCall(data []byte) (*Call, error) {
	if len(data) < 4 {
		return nil, errors.NoMatchingSchema("calldata %d bytes, selector needs 4", len(data))
	}
	var sel abi.Selector
	copy(sel[:], data[:4])

	candidates := t.CallsFor(sel)
	if len(candidates) == 0 {
		return nil, errors.NoMatchingSchema("no function registered for selector %s", sel.Hex())
	}

	for _, s := range candidates {
		args, err := s.DecodeArgs(data[4:])
		if err != nil {
			Logger().Debug("call candidate rejected",
				zap.String("signature", s.Signature()),
				zap.Error(err))
			continue
		}
		return &Call{Schema: s, Args: args}, nil
	}
	return nil, errors.NoMatchingSchema("no candidate for selector %s decoded %d-byte calldata", sel.Hex(), len(data))
}
