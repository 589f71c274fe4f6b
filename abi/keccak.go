package abi

import "golang.org/x/crypto/sha3"

// Keccak256 hashes the concatenation of its inputs with legacy Keccak-256,
// the variant contract ABIs use for selectors and event topics.
func Keccak256(data ...[]byte) Word {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var w Word
	h.Sum(w[:0])
	return w
}
