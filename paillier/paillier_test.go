package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edbcore/internal/kat"
)

// textbookKey reproduces the worked example from spec.md §8 scenario S3
// (originally the same vector the Python reference implementation's
// test suite exercises): p=293, q=433.
func textbookKey(t *testing.T) *PrivateKey {
	t.Helper()
	return kat.PaillierTextbookKey()
}

func TestPaillierTextbookVector(t *testing.T) {
	key := textbookKey(t)
	require.Equal(t, int64(126869), key.N.Int64())
	require.Equal(t, int64(126144), key.Lambda.Int64())

	ctxt, err := Encrypt(key.Public(), big.NewInt(521))
	require.NoError(t, err)
	ptxt, err := Decrypt(key, ctxt)
	require.NoError(t, err)
	assert.Equal(t, int64(521), ptxt.Int64())
}

func TestPaillierHomomorphicAddition(t *testing.T) {
	key := textbookKey(t)
	pub := key.Public()

	c1, err := Encrypt(pub, big.NewInt(14))
	require.NoError(t, err)
	c2, err := Encrypt(pub, big.NewInt(19))
	require.NoError(t, err)

	sum := Add(pub, c1, c2)
	plain, err := Decrypt(key, sum)
	require.NoError(t, err)
	assert.Equal(t, int64(33), plain.Int64())
}

func TestPaillierKeygenRoundTrip(t *testing.T) {
	key, err := GenerateKey(128)
	require.NoError(t, err)
	pub := key.Public()

	ctxt, err := Encrypt(pub, big.NewInt(521))
	require.NoError(t, err)
	ptxt, err := Decrypt(key, ctxt)
	require.NoError(t, err)
	assert.Equal(t, int64(521), ptxt.Int64())
}

func TestPaillierAverage(t *testing.T) {
	key, err := GenerateKey(128)
	require.NoError(t, err)
	pub := key.Public()

	values := []int64{14, 19, 12}
	ciphertexts := make([]*big.Int, len(values))
	for i, v := range values {
		c, err := Encrypt(pub, big.NewInt(v))
		require.NoError(t, err)
		ciphertexts[i] = c
	}

	numerator, denominator, err := Average(pub, ciphertexts)
	require.NoError(t, err)

	sum, err := Decrypt(key, numerator)
	require.NoError(t, err)

	sumF := new(big.Float).SetInt(sum)
	denF := new(big.Float).SetInt(denominator)
	avg, _ := new(big.Float).Quo(sumF, denF).Float64()

	assert.InDelta(t, 15.0, avg, 1e-9)
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	key := textbookKey(t)
	_, err := Encrypt(key.Public(), new(big.Int).Set(key.N))
	require.Error(t, err)
}
