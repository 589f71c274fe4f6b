// Package hyperlane provides a client-side codec for Ethereum contract
// calls and logs.
//
// The library turns typed values into ABI-encoded calldata, recovers typed
// return values from call responses, and recovers typed event records from
// raw log entries whose schema is identified only by a hash of the event
// signature.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hyperlane-monorepo/  Root package with the Transport boundary and Log record
//	├── abi/             Type descriptors, values, head/tail encoding and
//	│                    decoding, schemas, selector derivation
//	├── dispatch/        Selector tables, call multiplexing and event
//	│                    demultiplexing over registered schemas
//	├── mailbox/         Hyperlane Mailbox contract interface built on the
//	│                    codec, with a lazily constructed schema registry
//	├── errors/          Structured error types for debugging
//	└── cmd/calldata/    CLI for encoding calls and inspecting calldata/logs
//
// # Quick Start
//
// Encode a call against the built-in Mailbox registry:
//
//	data, err := mailbox.EncodeCall("dispatch",
//	    abi.Uint32Value(7),
//	    abi.FixedBytesValue(recipient[:]),
//	    abi.BytesValue([]byte("hi")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode calldata of unknown origin:
//
//	call, err := mailbox.DecodeCall(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(call.Schema.Name) // "dispatch"
//
// Decode a raw log entry:
//
//	ev, err := mailbox.DecodeLog(hyperlane.Log{Topics: topics, Data: data})
//
// # Boundaries
//
// The codec never opens connections or manages retries. Encoded calldata is
// handed to a Transport implementation supplied by the caller, and log
// entries arrive already separated into topics and data. Keccak-256 hashing
// is consumed from golang.org/x/crypto/sha3.
package hyperlane
