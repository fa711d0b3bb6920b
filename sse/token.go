package sse

import (
	"encoding/base64"

	"edbcore/primitives"
)

// preprocess pads and deterministically pre-encrypts a raw word. Equal
// words under the same encrypt key always yield equal prewords — that
// determinism is the intentional leakage the scheme trades for search
// capability.
func (c *Client) preprocess(word []byte) ([]byte, error) {
	padded, err := primitives.Pad(word)
	if err != nil {
		return nil, err
	}
	return primitives.EncryptBlock(c.encryptKey(), padded)
}

// postprocess is preprocess's inverse: AES-decrypt the block, then
// strip the PKCS#7-style padding.
func (c *Client) postprocess(preword []byte) ([]byte, error) {
	padded, err := primitives.DecryptBlock(c.encryptKey(), preword)
	if err != nil {
		return nil, err
	}
	return primitives.Unpad(padded)
}

func leftPart(block []byte) []byte {
	return block[:primitives.LeftBytes]
}

// wordKey derives the per-token key used to authenticate the right
// half of the keystream, from a preword's left part.
func (c *Client) wordKey(left []byte) []byte {
	return primitives.PRF(c.hashKey(), left, 0)
}

// streamPrefix derives the left LeftBytes of the keystream for a given
// per-record salt, keyed by the seed key. The underlying HMAC serves as
// a PRF over the salt here, not a counter-indexed PRG — salts, not
// monotonic indices, are what key the stream in this scheme.
func (c *Client) streamPrefix(salt []byte) []byte {
	return primitives.PRF(c.seedKey(), salt, primitives.LeftBytes)
}

func (c *Client) streamSuffix(wordKey, streamPrefix []byte) []byte {
	return primitives.PRF(wordKey, streamPrefix, primitives.MatchBytes)
}

// streamEncrypt XORs a preword against the salt-derived keystream.
func (c *Client) streamEncrypt(salt, preword []byte) ([]byte, error) {
	left := leftPart(preword)
	wk := c.wordKey(left)
	prefix := c.streamPrefix(salt)
	suffix := c.streamSuffix(wk, prefix)
	keystream := append(append([]byte{}, prefix...), suffix...)
	return primitives.XOR(preword, keystream)
}

// streamDecrypt recovers a preword from ciphertext and the salt it was
// encrypted under.
func (c *Client) streamDecrypt(salt, ciphertext []byte) ([]byte, error) {
	leftCiphertext := leftPart(ciphertext)
	prefix := c.streamPrefix(salt)
	left, err := primitives.XOR(leftCiphertext, prefix)
	if err != nil {
		return nil, err
	}
	wk := c.wordKey(left)
	suffix := c.streamSuffix(wk, prefix)
	keystream := append(append([]byte{}, prefix...), suffix...)
	return primitives.XOR(ciphertext, keystream)
}

// Encrypt encrypts word, drawing a fresh per-record salt from the
// CSPRNG, and returns the base64-encoded wire form salt‖ciphertext.
func (c *Client) Encrypt(word []byte) (string, error) {
	c.Lifecycle.Touch()
	salt, err := primitives.RandomBytes(primitives.BlockBytes)
	if err != nil {
		return "", err
	}
	preword, err := c.preprocess(word)
	if err != nil {
		return "", err
	}
	ciphertext, err := c.streamEncrypt(salt, preword)
	if err != nil {
		return "", err
	}
	concat := append(append([]byte{}, salt...), ciphertext...)
	return base64.StdEncoding.EncodeToString(concat), nil
}

// Decrypt decodes field and recovers the original word.
func (c *Client) Decrypt(field string) ([]byte, error) {
	c.Lifecycle.Touch()
	raw, err := base64.StdEncoding.DecodeString(field)
	if err != nil {
		return nil, primitives.NewFormatError("invalid base64", err)
	}
	if len(raw) != 2*primitives.BlockBytes {
		return nil, primitives.NewFormatError("invalid ciphertext -- incorrect length", nil)
	}
	salt, ciphertext := raw[:primitives.BlockBytes], raw[primitives.BlockBytes:]
	preword, err := c.streamDecrypt(salt, ciphertext)
	if err != nil {
		return nil, err
	}
	return c.postprocess(preword)
}

// Query returns the base64-encoded search parameters preword‖word_key
// for word, to be handed to a server for matching without ever
// revealing word or any secret key.
func (c *Client) Query(word []byte) (string, error) {
	c.Lifecycle.Touch()
	preword, err := c.preprocess(word)
	if err != nil {
		return "", err
	}
	wk := c.wordKey(leftPart(preword))
	concat := append(append([]byte{}, preword...), wk...)
	return base64.StdEncoding.EncodeToString(concat), nil
}
