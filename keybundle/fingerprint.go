package keybundle

import (
	"encoding/hex"
	"fmt"
	"sort"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a SHA3-256 digest, hex-encoded, that an operator
// can use to eyeball-verify that two copies of a keyfile describe the
// same bundle. It is a convenience for human verification only and
// carries no security guarantee of its own: it is computed over each
// entry's name, type, and only its public material (a Paillier entry's
// modulus and generator) and never touches a block key's raw bytes or a
// Paillier entry's lambda/mu trapdoor, so printing it never leaks
// anything a legitimate holder of only the public keyfile couldn't
// already compute for themselves.
func Fingerprint(bundle Bundle) string {
	names := make([]string, 0, len(bundle))
	for name := range bundle {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha3.New256()
	for _, name := range names {
		entry := bundle[name]
		fmt.Fprintf(h, "%s:%s:", name, entry.Type)
		switch entry.Type {
		case TypeBlock:
			fmt.Fprintf(h, "%d;", len(entry.Block))
		case TypePaillier:
			pub := entry.PublicKey()
			fmt.Fprintf(h, "%s,%s;", pub.N.String(), pub.G.String())
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
