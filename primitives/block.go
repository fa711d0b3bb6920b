package primitives

import (
	"crypto/aes"
	"crypto/cipher"
)

// zeroIV is the fixed, all-zero initialization vector used for the
// scheme's deterministic single-block encryption. Reusing a zero IV is
// only safe here because EncryptBlock is only ever called on a single
// 32-byte (two-AES-block) message, which it maps deterministically, as
// ECB would; it must never be generalized to multi-block input.
var zeroIV = make([]byte, aes.BlockSize)

// EncryptBlock deterministically encrypts a single BlockBytes-length
// message under key using AES-256 in CBC mode with a zero IV. Equal
// plaintexts under the same key always produce equal ciphertexts — that
// determinism is the intentional leakage the searchable-encryption
// scheme depends on for matching. key must be 32 bytes.
func EncryptBlock(key, message []byte) ([]byte, error) {
	if len(message) != BlockBytes {
		return nil, NewSizeError("expected a full block for encryption", len(message), BlockBytes)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, NewSizeError("invalid AES key", len(key), 32)
	}
	mode := cipher.NewCBCEncrypter(block, zeroIV)
	out := make([]byte, BlockBytes)
	mode.CryptBlocks(out, message)
	return out, nil
}

// DecryptBlock is the inverse of EncryptBlock.
func DecryptBlock(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != BlockBytes {
		return nil, NewSizeError("expected a full block for decryption", len(ciphertext), BlockBytes)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, NewSizeError("invalid AES key", len(key), 32)
	}
	mode := cipher.NewCBCDecrypter(block, zeroIV)
	out := make([]byte, BlockBytes)
	mode.CryptBlocks(out, ciphertext)
	return out, nil
}
