package utils

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of secret.
//
// The bin server stores this value as the owner of a bin instead of the
// master key itself, so a leaked database does not leak keys.
//
// Example usage:
//
//	owner := utils.Fingerprint(r.Header.Get("X-Master-Key"))
func Fingerprint(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// KeyMatches reports whether candidate equals one of keys. Comparison runs in
// constant time per key.
func KeyMatches(candidate string, keys []string) bool {
	if candidate == "" {
		return false
	}
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare([]byte(candidate), []byte(k))
	}
	return found == 1
}
