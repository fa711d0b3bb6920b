// Package keybundle implements schema-driven key bundle generation and
// its portable JSON serialization (spec.md §4.3): the sealed mapping
// from a caller-chosen key name to either raw symmetric key material or
// a Paillier key record, generated atomically and treated as immutable
// thereafter.
package keybundle

import (
	"fmt"

	"edbcore/primitives"
)

// KeyType names a supported key kind. The zero value is not a valid
// KeyType; an Attrs entry without a "type" key defaults to TypeBlock.
type KeyType string

const (
	TypeBlock    KeyType = "block"
	TypePaillier KeyType = "paillier"
)

// DefaultBits is the bit width assumed when an Attrs entry omits Bits.
const DefaultBits = 256

// Attrs describes one key schema entry. It mirrors the Python
// reference's free-form attribute dict closely enough to keep the same
// validation rule: any key other than "type" or "bits" is a schema
// error, caught by Schema.Validate before generation ever runs.
type Attrs map[string]interface{}

// Schema maps a key name to its descriptor. Order is irrelevant; only
// the set of names and their descriptors matter.
type Schema map[string]Attrs

var allowedAttrKeys = map[string]bool{"type": true, "bits": true}

// resolved holds an Attrs entry after defaulting and type-checking.
type resolved struct {
	Type KeyType
	Bits int
}

// Validate checks every entry's attribute keys and value types,
// returning the fully-defaulted descriptors keyed by name. It never
// mutates the schema or draws key material.
func (s Schema) Validate() (map[string]resolved, error) {
	out := make(map[string]resolved, len(s))
	for name, attrs := range s {
		for key := range attrs {
			if !allowedAttrKeys[key] {
				return nil, primitives.NewSchemaError(
					fmt.Sprintf("%s: unexpected attribute %q", name, key), nil)
			}
		}

		keyType := TypeBlock
		if rawType, ok := attrs["type"]; ok {
			s, ok := rawType.(string)
			if !ok {
				return nil, primitives.NewSchemaError(fmt.Sprintf("%s: type is not a string", name), nil)
			}
			switch KeyType(s) {
			case TypeBlock, TypePaillier:
				keyType = KeyType(s)
			default:
				return nil, primitives.NewSchemaError(fmt.Sprintf("%s: bad type %q", name, s), nil)
			}
		}

		bits := DefaultBits
		if rawBits, ok := attrs["bits"]; ok {
			n, err := toInt(rawBits)
			if err != nil {
				return nil, primitives.NewSchemaError(fmt.Sprintf("%s/bits is not int", name), err)
			}
			bits = n
		}

		out[name] = resolved{Type: keyType, Bits: bits}
	}
	return out, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported bits value type %T", v)
	}
}
