package id

import (
	"crypto/rand"
	"encoding/hex"
)

const rawLen = 16

// NewID32 generates a public entity identifier: 32 lowercase hex
// characters (128 bits of entropy), no separators or prefixes.
func NewID32() string {
	var b [rawLen]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
