package utils

import (
	"hash/fnv"
	"io"
)

// FingerprintString returns the FNV-64a hash of s.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, s)
	return h.Sum64()
}

// FingerprintTemplate hashes a query template together with the flag that
// controls conditional block handling, so both compilations of one text get
// distinct keys.
func FingerprintTemplate(tpl string, blocks bool) uint64 {
	h := fnv.New64a()
	if blocks {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = io.WriteString(h, tpl)
	return h.Sum64()
}
