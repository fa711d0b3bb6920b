package primitives

import "crypto/rand"

// RandomBytes draws n bytes from the OS CSPRNG. The CSPRNG is a
// process-wide shared resource safe for concurrent use; callers never
// need to serialize access to it themselves.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, NewCryptoError("failed to read from CSPRNG", err)
	}
	return buf, nil
}
