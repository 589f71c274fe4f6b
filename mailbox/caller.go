package mailbox

import (
	"context"
	"math/big"

	"github.com/0xRampey/hyperlane-monorepo"
	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Caller issues Mailbox calls over a transport. It encodes arguments,
// hands the calldata to the transport, and decodes the returndata; the
// transport owns everything network-shaped.
type Caller struct {
	transport hyperlane.Transport
}

// NewCaller wraps a transport.
func NewCaller(t hyperlane.Transport) *Caller {
	return &Caller{transport: t}
}

// Call encodes and executes a read-only function and returns its decoded
// outputs.
func (c *Caller) Call(ctx context.Context, name string, args ...abi.Value) ([]abi.Value, error) {
	calldata, err := EncodeCall(name, args...)
	if err != nil {
		return nil, err
	}
	ret, err := c.transport.Call(ctx, calldata)
	if err != nil {
		return nil, err
	}
	return DecodeResult(name, ret)
}

// Send encodes and submits a state-changing function.
func (c *Caller) Send(ctx context.Context, name string, args ...abi.Value) error {
	calldata, err := EncodeCall(name, args...)
	if err != nil {
		return err
	}
	return c.transport.Send(ctx, calldata)
}

// Version returns the Mailbox message format version.
func (c *Caller) Version(ctx context.Context) (uint8, error) {
	n, err := c.callUint(ctx, "VERSION")
	return uint8(n), err
}

// LocalDomain returns the domain the Mailbox is deployed on.
func (c *Caller) LocalDomain(ctx context.Context) (uint32, error) {
	n, err := c.callUint(ctx, "localDomain")
	return uint32(n), err
}

// Nonce returns the number of messages dispatched so far.
func (c *Caller) Nonce(ctx context.Context) (uint32, error) {
	n, err := c.callUint(ctx, "nonce")
	return uint32(n), err
}

// Delivered reports whether the message with the given identifier has been
// processed.
func (c *Caller) Delivered(ctx context.Context, id abi.Word) (bool, error) {
	out, err := c.Call(ctx, "delivered", abi.WordValue(id))
	if err != nil {
		return false, err
	}
	if len(out) != 1 || out[0].Kind != abi.KindBool {
		return false, errors.InvalidData(errors.PhaseDecode, []string{"delivered"}, "unexpected result shape")
	}
	return out[0].Bool, nil
}

// LatestDispatchedId returns the identifier of the most recently dispatched
// message.
func (c *Caller) LatestDispatchedId(ctx context.Context) (abi.Word, error) {
	out, err := c.Call(ctx, "latestDispatchedId")
	if err != nil {
		return abi.Word{}, err
	}
	w, ok := firstWord(out)
	if !ok {
		return abi.Word{}, errors.InvalidData(errors.PhaseDecode, []string{"latestDispatchedId"}, "unexpected result shape")
	}
	return w, nil
}

// Owner returns the contract owner.
func (c *Caller) Owner(ctx context.Context) (abi.Address, error) {
	return c.callAddress(ctx, "owner")
}

// DefaultIsm returns the default interchain security module.
func (c *Caller) DefaultIsm(ctx context.Context) (abi.Address, error) {
	return c.callAddress(ctx, "defaultIsm")
}

// DefaultHook returns the default post-dispatch hook.
func (c *Caller) DefaultHook(ctx context.Context) (abi.Address, error) {
	return c.callAddress(ctx, "defaultHook")
}

// RequiredHook returns the required post-dispatch hook.
func (c *Caller) RequiredHook(ctx context.Context) (abi.Address, error) {
	return c.callAddress(ctx, "requiredHook")
}

// RecipientIsm returns the security module a recipient has configured.
func (c *Caller) RecipientIsm(ctx context.Context, recipient abi.Address) (abi.Address, error) {
	return c.callAddress(ctx, "recipientIsm", abi.AddressValue(recipient))
}

// QuoteDispatch returns the fee for dispatching a message to the
// destination domain.
func (c *Caller) QuoteDispatch(ctx context.Context, destination uint32, recipient abi.Word, body []byte) (*big.Int, error) {
	out, err := c.Call(ctx, "quoteDispatch",
		abi.Uint32Value(destination), abi.WordValue(recipient), abi.BytesValue(body))
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, errors.InvalidData(errors.PhaseDecode, []string{"quoteDispatch"}, "unexpected result shape")
	}
	fee, ok := out[0].BigInt()
	if !ok {
		return nil, errors.InvalidData(errors.PhaseDecode, []string{"quoteDispatch"}, "unexpected result shape")
	}
	return fee, nil
}

// Dispatch submits a message for delivery to the destination domain.
func (c *Caller) Dispatch(ctx context.Context, destination uint32, recipient abi.Word, body []byte) error {
	return c.Send(ctx, "dispatch",
		abi.Uint32Value(destination), abi.WordValue(recipient), abi.BytesValue(body))
}

// Process delivers an inbound message with its security metadata.
func (c *Caller) Process(ctx context.Context, metadata, message []byte) error {
	return c.Send(ctx, "process", abi.BytesValue(metadata), abi.BytesValue(message))
}

func (c *Caller) callUint(ctx context.Context, name string, args ...abi.Value) (uint64, error) {
	out, err := c.Call(ctx, name, args...)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, errors.InvalidData(errors.PhaseDecode, []string{name}, "unexpected result shape")
	}
	n, ok := out[0].Uint64()
	if !ok {
		return 0, errors.InvalidData(errors.PhaseDecode, []string{name}, "unexpected result shape")
	}
	return n, nil
}

func (c *Caller) callAddress(ctx context.Context, name string, args ...abi.Value) (abi.Address, error) {
	out, err := c.Call(ctx, name, args...)
	if err != nil {
		return abi.Address{}, err
	}
	if len(out) != 1 {
		return abi.Address{}, errors.InvalidData(errors.PhaseDecode, []string{name}, "unexpected result shape")
	}
	a, ok := out[0].Address()
	if !ok {
		return abi.Address{}, errors.InvalidData(errors.PhaseDecode, []string{name}, "unexpected result shape")
	}
	return a, nil
}

func firstWord(out []abi.Value) (abi.Word, bool) {
	if len(out) != 1 {
		return abi.Word{}, false
	}
	return out[0].Word()
}
