// Package primitives implements the symmetric cryptographic building
// blocks the searchable-encryption client and server are composed from:
// the deterministic single-block cipher, the CTR-mode pseudorandom
// generator, the HMAC-SHA-256 pseudorandom function, PBKDF2 key
// derivation, padding, and constant-time XOR.
//
// None of these operations are safe as general-purpose primitives —
// the deterministic CBC mode in particular is only sound inside the
// searchable-encryption scheme that consumes it. See the package's
// doc comments for the invariants each function depends on.
package primitives

// BlockBytes is the fixed width, in bytes, of every symmetric value the
// scheme manipulates: pre-encrypted words, stream blocks, and
// ciphertext blocks.
const BlockBytes = 32

// MatchBytes is the width of the right half of a block, the part a
// server can recompute during a match without learning the plaintext.
// Changing this breaks wire compatibility with existing ciphertexts
// (see DESIGN.md).
const MatchBytes = 4

// LeftBytes is the width of the left half of a block.
const LeftBytes = BlockBytes - MatchBytes

func init() {
	if LeftBytes+MatchBytes != BlockBytes {
		panic("primitives: LEFT_BYTES + MATCH_BYTES must equal BLOCK_BYTES")
	}
}
