package keybundle

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"edbcore/paillier"
	"edbcore/primitives"
)

const (
	paillierPrivateKey = "paillier"
	paillierPublicKey  = "paillier.pub"
)

// Preserialize converts a Bundle into the portable JSON-able form
// described in spec.md §4.3/§6: block keys become base64 strings,
// private Paillier keys become {"paillier": [n, g, lambda, mu]}, and
// public-only Paillier keys become {"paillier.pub": [n, g]}. Every
// big-integer component is emitted as a decimal string so the result
// round-trips through JSON decoders that cannot hold arbitrary
// precision integers.
func Preserialize(bundle Bundle) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(bundle))
	for name, entry := range bundle {
		switch entry.Type {
		case TypeBlock:
			out[name] = base64.StdEncoding.EncodeToString(entry.Block)
		case TypePaillier:
			if entry.PaillierPriv != nil {
				k := entry.PaillierPriv
				out[name] = map[string]interface{}{
					paillierPrivateKey: []string{
						k.N.String(), k.G.String(), k.Lambda.String(), k.Mu.String(),
					},
				}
			} else if entry.PaillierPub != nil {
				k := entry.PaillierPub
				out[name] = map[string]interface{}{
					paillierPublicKey: []string{k.N.String(), k.G.String()},
				}
			} else {
				return nil, primitives.NewFormatError(fmt.Sprintf("%s: empty paillier entry", name), nil)
			}
		default:
			return nil, primitives.NewFormatError(fmt.Sprintf("%s: unexpected keydata", name), nil)
		}
	}
	return out, nil
}

// Postdeserialize undoes Preserialize, validating tuple arities and
// base64 well-formedness along the way. Any structural problem is
// reported as a FormatError, never silently coerced.
func Postdeserialize(raw map[string]json.RawMessage) (Bundle, error) {
	bundle := make(Bundle, len(raw))
	for name, msg := range raw {
		var asString string
		if err := json.Unmarshal(msg, &asString); err == nil {
			decoded, err := base64.StdEncoding.DecodeString(asString)
			if err != nil {
				return nil, primitives.NewFormatError(fmt.Sprintf("%s: serialized keydata not base64", name), err)
			}
			bundle[name] = Entry{Type: TypeBlock, Block: decoded}
			continue
		}

		var asObject map[string]json.RawMessage
		if err := json.Unmarshal(msg, &asObject); err != nil {
			return nil, primitives.NewFormatError(fmt.Sprintf("%s: invalid keydata", name), err)
		}

		if tuple, ok := asObject[paillierPrivateKey]; ok {
			values, err := decodeBigIntTuple(tuple, 4)
			if err != nil {
				return nil, primitives.NewFormatError(fmt.Sprintf("%s: invalid paillier keydata", name), err)
			}
			bundle[name] = Entry{Type: TypePaillier, PaillierPriv: &paillier.PrivateKey{
				N: values[0], G: values[1], Lambda: values[2], Mu: values[3],
			}}
			continue
		}
		if tuple, ok := asObject[paillierPublicKey]; ok {
			values, err := decodeBigIntTuple(tuple, 2)
			if err != nil {
				return nil, primitives.NewFormatError(fmt.Sprintf("%s: invalid paillier keydata", name), err)
			}
			bundle[name] = Entry{Type: TypePaillier, PaillierPub: &paillier.PublicKey{
				N: values[0], G: values[1],
			}}
			continue
		}

		return nil, primitives.NewFormatError(fmt.Sprintf("%s: invalid keydata", name), nil)
	}
	return bundle, nil
}

// decodeBigIntTuple decodes a JSON array of exactly arity big integers,
// each of which may be encoded either as a JSON number or a decimal
// string literal.
func decodeBigIntTuple(raw json.RawMessage, arity int) ([]*big.Int, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if len(items) != arity {
		return nil, fmt.Errorf("expected %d components, got %d", arity, len(items))
	}

	result := make([]*big.Int, arity)
	for i, item := range items {
		n, err := decodeBigInt(item)
		if err != nil {
			return nil, err
		}
		result[i] = n
	}
	return result, nil
}

func decodeBigInt(raw json.RawMessage) (*big.Int, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		n, ok := new(big.Int).SetString(asString, 10)
		if !ok {
			return nil, fmt.Errorf("not a decimal integer: %q", asString)
		}
		return n, nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		n, ok := new(big.Int).SetString(asNumber.String(), 10)
		if !ok {
			return nil, fmt.Errorf("not an integer: %s", asNumber.String())
		}
		return n, nil
	}

	return nil, fmt.Errorf("unsupported big integer encoding: %s", string(raw))
}

// Write serializes a Bundle to path as UTF-8 JSON. It follows a
// write-then-rename discipline so a process crash mid-write can never
// leave behind a partially-written, unparseable keyfile: the bundle is
// fully marshaled and written to a sibling temp file, which is only
// renamed over path once the write and close both succeed.
func Write(bundle Bundle, path string) error {
	psz, err := Preserialize(bundle)
	if err != nil {
		return err
	}
	data, err := json.Marshal(psz)
	if err != nil {
		return primitives.NewFormatError("failed to marshal keyinfo", err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return primitives.NewFormatError("failed to open keyfile for writing", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return primitives.NewFormatError("failed to write keyfile", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return primitives.NewFormatError("failed to close keyfile", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return primitives.NewFormatError("failed to finalize keyfile", err)
	}
	return nil
}

// Read loads and validates a Bundle previously written by Write.
func Read(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, primitives.NewFormatError("failed to read keyfile", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, primitives.NewFormatError("malformed keyfile JSON", err)
	}
	return Postdeserialize(raw)
}
