// Package match implements the server side of the searchable-encryption
// scheme: a pure predicate that decides whether an encrypted field
// matches an encrypted query without ever holding a secret key, plus
// the aggregate operators (count, sum, average, correlate) a
// semi-trusted server can run over matching rows.
package match

import (
	"encoding/base64"
	"math/big"

	"edbcore/paillier"
	"edbcore/primitives"
)

// Field is the base64 wire form of an encrypted field: salt‖ciphertext.
type Field string

// Query is the base64 wire form of a query token: preword‖word_key.
type Query string

// Match decides whether field was produced by encrypting the word
// query was generated from, under the same key bundle and some salt.
// Decoding or length failures are treated as non-matches rather than
// errors, so a malformed or corrupted row never aborts a query — a
// deliberate choice spec.md §7 calls out explicitly.
func Match(field Field, query Query) bool {
	rawField, err := base64.StdEncoding.DecodeString(string(field))
	if err != nil || len(rawField) != 2*primitives.BlockBytes {
		return false
	}
	rawQuery, err := base64.StdEncoding.DecodeString(string(query))
	if err != nil || len(rawQuery) != 2*primitives.BlockBytes {
		return false
	}

	preword, wordKey := rawQuery[:primitives.BlockBytes], rawQuery[primitives.BlockBytes:]
	ciphertext := rawField[primitives.BlockBytes:]

	block, err := primitives.XOR(ciphertext, preword)
	if err != nil {
		return false
	}
	prefix, suffix := block[:primitives.LeftBytes], block[primitives.LeftBytes:]
	candidate := primitives.PRF(wordKey, prefix, primitives.MatchBytes)

	// Constant-time compare is not required here: this data is already
	// public to the server (it decided to run the query), and the
	// scheme's threat model (spec.md §1 Non-goals) never claims timing
	// resistance for the server side.
	if len(candidate) != len(suffix) {
		return false
	}
	for i := range candidate {
		if candidate[i] != suffix[i] {
			return false
		}
	}
	return true
}

// Count returns the number of fields in db that match query.
func Count(db []Field, query Query) int {
	n := 0
	for _, field := range db {
		if Match(field, query) {
			n++
		}
	}
	return n
}

// MatchIndices returns the indices into db of every field matching
// query, preserving db's order.
func MatchIndices(db []Field, query Query) []int {
	var indices []int
	for i, field := range db {
		if Match(field, query) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Sum homomorphically adds the Paillier ciphertexts in values at the
// indices that match query, returning a single ciphertext whose
// decryption is the sum of the matching plaintexts. len(values) must
// equal len(db).
func Sum(db []Field, query Query, values []*big.Int, pub *paillier.PublicKey) (*big.Int, error) {
	if len(values) != len(db) {
		return nil, primitives.NewTypeError("values must have one entry per db row")
	}
	var total *big.Int
	for _, i := range MatchIndices(db, query) {
		if total == nil {
			total = new(big.Int).Set(values[i])
			continue
		}
		total = paillier.Add(pub, total, values[i])
	}
	if total == nil {
		// No matches: return Paillier's encryption of zero so callers
		// can always decrypt a result rather than special-casing nil.
		return paillier.Encrypt(pub, big.NewInt(0))
	}
	return total, nil
}

// Average computes the blinded homomorphic average (spec.md §4.2) of
// the Paillier ciphertexts in values at the indices that match query.
// It returns (nil, nil, nil) when there are no matches, signalling to
// the caller that there is nothing to average rather than a
// divide-by-zero.
func Average(db []Field, query Query, values []*big.Int, pub *paillier.PublicKey) (numerator, denominator *big.Int, err error) {
	if len(values) != len(db) {
		return nil, nil, primitives.NewTypeError("values must have one entry per db row")
	}
	indices := MatchIndices(db, query)
	if len(indices) == 0 {
		return nil, nil, nil
	}
	matching := make([]*big.Int, len(indices))
	for i, idx := range indices {
		matching[i] = values[idx]
	}
	num, denom, err := paillier.Average(pub, matching)
	if err != nil {
		return nil, nil, err
	}
	return num, denom, nil
}

// Correlate returns |matches(q1) ∩ matches(q2)| / |matches(q1)|, the
// fraction of rows matching q1 that also match q2. It is 0 if no row
// matches q1.
func Correlate(db []Field, q1, q2 Query) float64 {
	var both, onlyQ1 int
	for _, field := range db {
		m1 := Match(field, q1)
		if !m1 {
			continue
		}
		onlyQ1++
		if Match(field, q2) {
			both++
		}
	}
	if onlyQ1 == 0 {
		return 0
	}
	return float64(both) / float64(onlyQ1)
}
