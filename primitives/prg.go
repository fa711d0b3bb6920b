package primitives

import (
	"crypto/aes"
	"crypto/cipher"
)

// PRG is the pseudorandom generator: AES-256 in CTR mode with an
// initial counter value of index, encrypting either a zero buffer of
// length bytes or, if mask is non-nil, mask itself (for XOR delivery
// in one call). The counter is the same width as the cipher's block
// size (128 bits), big-endian, matching the counter convention used
// throughout the scheme's stream keying.
func PRG(key []byte, index uint64, length int, mask []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, NewSizeError("invalid AES key", len(key), 32)
	}

	iv := make([]byte, aes.BlockSize)
	// Counter occupies the low bytes of the block-sized counter value;
	// index is placed big-endian in the trailing 8 bytes, matching a
	// big counter initialized to a small starting value.
	for i := 0; i < 8; i++ {
		iv[aes.BlockSize-1-i] = byte(index >> (8 * i))
	}

	var input []byte
	if mask != nil {
		input = mask
	} else {
		n := length
		if n == 0 {
			n = BlockBytes
		}
		input = make([]byte, n)
	}

	stream := cipher.NewCTR(block, iv)
	out := make([]byte, len(input))
	stream.XORKeyStream(out, input)
	return out, nil
}
