// Package mailbox binds the Hyperlane Mailbox contract: its full ABI is
// embedded and parsed once, lazily, into a registry backing EncodeCall,
// DecodeCall, DecodeResult and DecodeLog. Caller layers typed accessors for
// the common functions over any Transport.
package mailbox
