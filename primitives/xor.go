package primitives

// XOR returns the byte-wise exclusive-or of original with each of
// others. All inputs must share the same length; a mismatch is a
// TypeError per the core's error taxonomy, not a panic.
func XOR(original []byte, others ...[]byte) ([]byte, error) {
	size := len(original)
	result := make([]byte, size)
	copy(result, original)
	for _, other := range others {
		if len(other) != size {
			return nil, NewTypeError("mismatched lengths for xor")
		}
		for i := 0; i < size; i++ {
			result[i] ^= other[i]
		}
	}
	return result, nil
}
