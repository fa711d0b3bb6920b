package primitives

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations intentionally matches the original
// scheme's legacy derivation: 10,000 rounds of HMAC-SHA-256 over an
// empty salt. This derivation is kept for backwards compatibility with
// keys generated by older deployments; it is deterministic in the
// passphrase alone (see the doc comment on KDF).
const pbkdf2Iterations = 10000

// KDF derives len(names) BlockBytes-length keys from passphrase using
// PBKDF2-HMAC-SHA-256 with an empty salt and 10,000 iterations, then
// slices the resulting key material into one block per name, in the
// order given. Because the salt is empty, KDF is a pure function of
// passphrase and names: new deployments should prefer
// keybundle.Generate, which draws fresh CSPRNG key material instead of
// deriving it from a passphrase. This legacy path exists only so
// ciphertexts produced under an existing passphrase-derived bundle
// remain decryptable.
func KDF(passphrase []byte, names []string) map[string][]byte {
	material := pbkdf2.Key(passphrase, nil, pbkdf2Iterations, BlockBytes*len(names), sha256.New)
	keys := make(map[string][]byte, len(names))
	for i, name := range names {
		keys[name] = material[i*BlockBytes : (i+1)*BlockBytes]
	}
	return keys
}
