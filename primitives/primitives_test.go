package primitives

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	for _, word := range [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("127.0.0.1"),
		bytes.Repeat([]byte("x"), BlockBytes-1),
	} {
		padded, err := Pad(word)
		require.NoError(t, err)
		require.Len(t, padded, BlockBytes)

		unpadded, err := Unpad(padded)
		require.NoError(t, err)
		assert.Equal(t, word, unpadded)
	}
}

func TestPadRejectsFullBlock(t *testing.T) {
	_, err := Pad(bytes.Repeat([]byte("x"), BlockBytes))
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestUnpadRejectsWrongLength(t *testing.T) {
	_, err := Unpad([]byte("too short"))
	require.Error(t, err)
}

func TestEncryptDecryptBlockRoundTrip(t *testing.T) {
	key, err := RandomBytes(32)
	require.NoError(t, err)
	message := bytes.Repeat([]byte{0x42}, BlockBytes)

	ciphertext, err := EncryptBlock(key, message)
	require.NoError(t, err)
	require.Len(t, ciphertext, BlockBytes)

	recovered, err := DecryptBlock(key, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, message, recovered)
}

func TestEncryptBlockIsDeterministic(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 32)
	message := bytes.Repeat([]byte{0x99}, BlockBytes)

	c1, err := EncryptBlock(key, message)
	require.NoError(t, err)
	c2, err := EncryptBlock(key, message)
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "deterministic pre-encryption must not vary between calls")
}

func TestEncryptBlockRejectsWrongSize(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 32)
	_, err := EncryptBlock(key, []byte("short"))
	require.Error(t, err)
}

func TestXOR(t *testing.T) {
	testBlock := bytes.Repeat([]byte("t"), BlockBytes)
	nullBlock := bytes.Repeat([]byte{0}, BlockBytes)

	result, err := XOR(nullBlock, testBlock)
	require.NoError(t, err)
	assert.Equal(t, testBlock, result)

	result, err = XOR(testBlock, testBlock)
	require.NoError(t, err)
	assert.Equal(t, nullBlock, result)
}

func TestXORRejectsMismatchedLengths(t *testing.T) {
	_, err := XOR([]byte("abc"), []byte("ab"))
	require.Error(t, err)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestPRGProducesFullLengthBlocks(t *testing.T) {
	key, err := RandomBytes(32)
	require.NoError(t, err)

	for i := uint64(0); i < 10; i++ {
		block, err := PRG(key, i, BlockBytes, nil)
		require.NoError(t, err)
		assert.Len(t, block, BlockBytes)
	}
}

func TestPRGDistinctCountersDiffer(t *testing.T) {
	key, err := RandomBytes(32)
	require.NoError(t, err)

	a, err := PRG(key, 0, BlockBytes, nil)
	require.NoError(t, err)
	b, err := PRG(key, 1, BlockBytes, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPRFTruncation(t *testing.T) {
	key := []byte("some-hmac-key")
	msg := []byte("some-message")

	full := PRF(key, msg, 0)
	assert.Len(t, full, 32)

	truncated := PRF(key, msg, MatchBytes)
	assert.Len(t, truncated, MatchBytes)
	assert.Equal(t, full[:MatchBytes], truncated)
}

func TestKDFIsDeterministicAndPartitioned(t *testing.T) {
	passphrase := []byte("hunter2 is not a good password")
	names := []string{"seed", "hash", "encrypt"}

	keys1 := KDF(passphrase, names)
	keys2 := KDF(passphrase, names)

	for _, name := range names {
		require.Len(t, keys1[name], BlockBytes)
		assert.Equal(t, keys1[name], keys2[name], "KDF must be deterministic given the same passphrase")
	}
	assert.NotEqual(t, keys1["seed"], keys1["hash"])
}

func TestRandomBytesLength(t *testing.T) {
	buf, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, buf, 32)
}
