package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey returns a content-addressed store key for raw: prefix, a
// colon, and the hex-encoded SHA-256 digest of raw. Two byte-identical
// records always produce the same key, and the key changes the instant the
// bytes do — a document cache keyed this way never needs a separate
// staleness check.
func ContentKey(prefix string, raw []byte) string {
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:])
}
