// Package errors provides structured error types for the contract codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: value path, ABI type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOffsetRange).
//		Path("arg[2]").
//		AbiType("bytes").
//		Detail("offset points past end of data").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "uint32")
//	err := errors.DataTooShort(path, 36, 12)
//
// All errors implement the standard error interface and support errors.Is/As.
// Decode-phase and dispatch-phase errors are expected for untrusted wire data
// and are always recoverable by the caller.
package errors
