package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
)

// PRF is the pseudorandom function: an HMAC-SHA-256 of message under
// key, truncated to the leftmost length bytes. A length of 0 means
// "no truncation", returning the full 32-byte digest.
func PRF(key, message []byte, length int) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	digest := mac.Sum(nil)
	if length <= 0 || length >= len(digest) {
		return digest
	}
	return digest[:length]
}
