// Package abi implements the contract ABI wire format: type descriptors,
// runtime values, the head/tail encoder and decoder, function and event
// schemas with their Keccak-derived selectors and topics, and a parser for
// JSON ABI documents.
//
// Types come from Parse ("uint32", "(address,bytes)[2]") or the explicit
// constructors; values come from the *Value constructors and are validated
// against their descriptor before encoding. Decoding treats input as
// untrusted and never panics on malformed bytes.
package abi
