package hyperlane

import (
	"context"

	"github.com/0xRampey/hyperlane-monorepo/abi"
)

// Transport carries encoded calldata to a contract and returns raw response
// bytes. Implementations own connection management, retries and timeouts;
// the codec layer never performs I/O itself.
type Transport interface {
	// Call executes a read-only call and returns the raw ABI-encoded result.
	Call(ctx context.Context, calldata []byte) ([]byte, error)
	// Send submits a state-changing call. The codec does not wait for or
	// interpret execution results.
	Send(ctx context.Context, calldata []byte) error
}

// Log is one raw log entry as delivered by a transport: the ordered topic
// words and the opaque data payload. The caller owns both slices; decoders
// only read them.
type Log struct {
	Topics []abi.Word
	Data   []byte
}
