// Package sse implements the client half of the Song–Wagner–Perrig
// "final scheme" searchable symmetric encryption: per-token encryption
// with a per-record salt, query-token generation, and batch operations
// over record-shaped maps of field name to value.
package sse

import (
	"edbcore/keybundle"
	"edbcore/paillier"
	"edbcore/primitives"
)

// Required key bundle member names, per spec.md §3.
const (
	KeySeed    = "seed"
	KeyHash    = "hash"
	KeyEncrypt = "encrypt"
	KeyPaillier = "paillier"
)

// KeySchema is the key schema every Client is generated or loaded
// against: three independent 256-bit block keys plus one 512-bit
// Paillier keypair for homomorphic aggregate queries.
var KeySchema = keybundle.Schema{
	KeySeed:     keybundle.Attrs{"type": "block", "bits": primitives.BlockBytes * 8},
	KeyHash:     keybundle.Attrs{"type": "block", "bits": primitives.BlockBytes * 8},
	KeyEncrypt:  keybundle.Attrs{"type": "block", "bits": primitives.BlockBytes * 8},
	KeyPaillier: keybundle.Attrs{"type": "paillier", "bits": paillier.DefaultBits},
}

// Client holds a sealed key bundle and implements per-token encryption,
// decryption, and query-token generation against it.
type Client struct {
	keys      keybundle.Bundle
	Lifecycle *keybundle.Lifecycle
}

// NewClient wraps an already-generated or already-loaded Bundle as a
// Client, after checking it actually declares the keys the scheme
// needs. lifecycle may be nil, in which case a fresh one is started.
func NewClient(bundle keybundle.Bundle, lifecycle *keybundle.Lifecycle) (*Client, error) {
	for _, name := range []string{KeySeed, KeyHash, KeyEncrypt, KeyPaillier} {
		entry, ok := bundle[name]
		if !ok {
			return nil, primitives.NewSchemaError("key bundle missing required key: "+name, nil)
		}
		if name == KeyPaillier {
			if entry.Type != keybundle.TypePaillier || entry.PaillierPriv == nil {
				return nil, primitives.NewSchemaError(name+": expected a private paillier key", nil)
			}
			continue
		}
		if entry.Type != keybundle.TypeBlock || len(entry.Block) != primitives.BlockBytes {
			return nil, primitives.NewSchemaError(name+": expected a 256-bit block key", nil)
		}
	}
	if lifecycle == nil {
		lifecycle = keybundle.NewLifecycle()
	}
	return &Client{keys: bundle, Lifecycle: lifecycle}, nil
}

// GenerateClient draws a fresh Bundle against KeySchema and wraps it as
// a Client.
func GenerateClient() (*Client, error) {
	bundle, err := keybundle.Generate(KeySchema)
	if err != nil {
		return nil, err
	}
	return NewClient(bundle, keybundle.NewLifecycle())
}

// LoadClient reads a Bundle from path and wraps it as a Client.
func LoadClient(path string) (*Client, error) {
	bundle, err := keybundle.Read(path)
	if err != nil {
		return nil, err
	}
	return NewClient(bundle, keybundle.NewLifecycleFromFile(path))
}

// PaillierPublicKey returns the public Paillier key material, safe to
// hand to the server so it can aggregate encrypted numeric fields.
func (c *Client) PaillierPublicKey() *paillier.PublicKey {
	return c.keys[KeyPaillier].PublicKey()
}

// PaillierPrivateKey returns the client's own Paillier private key, for
// decrypting the ciphertext sums and averages a server computes from
// homomorphic aggregate queries. It never leaves the client.
func (c *Client) PaillierPrivateKey() *paillier.PrivateKey {
	return c.keys[KeyPaillier].PaillierPriv
}

func (c *Client) seedKey() []byte    { return c.keys[KeySeed].Block }
func (c *Client) hashKey() []byte    { return c.keys[KeyHash].Block }
func (c *Client) encryptKey() []byte { return c.keys[KeyEncrypt].Block }
