package keybundle

import (
	"edbcore/paillier"
	"edbcore/primitives"
)

// Entry is one named key bundle member. Exactly one of Block,
// PaillierPriv, or PaillierPub is populated, matching Type. A block
// entry's bytes must never be mutated by callers — treat the slice as
// read-only, the way the sealed bundle it came from is read-only.
type Entry struct {
	Type         KeyType
	Block        []byte
	PaillierPriv *paillier.PrivateKey
	PaillierPub  *paillier.PublicKey
}

// PublicKey returns the Paillier public view of this entry, whether it
// holds the private key or only ever held the public one.
func (e Entry) PublicKey() *paillier.PublicKey {
	if e.PaillierPriv != nil {
		return e.PaillierPriv.Public()
	}
	return e.PaillierPub
}

// Bundle is a sealed mapping from key name to key material, generated
// atomically by Generate and safe for concurrent read-only use
// thereafter. Bundle itself is just a map; the "sealed" invariant is a
// convention enforced by never handing callers a mutable reference to
// individual byte slices' backing arrays from anywhere but Generate and
// the deserializer.
type Bundle map[string]Entry

// Generate produces a sealed Bundle from schema: a fresh CSPRNG byte
// string for every block entry, a fresh Paillier key pair for every
// paillier entry. Every name declared in schema appears exactly once in
// the result.
func Generate(schema Schema) (Bundle, error) {
	resolved, err := schema.Validate()
	if err != nil {
		return nil, err
	}

	bundle := make(Bundle, len(resolved))
	for name, r := range resolved {
		switch r.Type {
		case TypeBlock:
			if r.Bits%8 != 0 {
				return nil, primitives.NewSchemaError("bits must be a multiple of 8", nil)
			}
			key, err := primitives.RandomBytes(r.Bits / 8)
			if err != nil {
				return nil, err
			}
			bundle[name] = Entry{Type: TypeBlock, Block: key}
		case TypePaillier:
			priv, err := paillier.GenerateKey(r.Bits)
			if err != nil {
				return nil, err
			}
			bundle[name] = Entry{Type: TypePaillier, PaillierPriv: priv}
		}
	}
	return bundle, nil
}
