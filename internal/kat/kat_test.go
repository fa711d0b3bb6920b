package kat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edbcore/paillier"
)

func TestDefaultSuiteHasDistinctVectors(t *testing.T) {
	s := DefaultSuite()
	require.Len(t, s.Vectors, 4)

	seen := make(map[string]bool)
	for _, v := range s.Vectors {
		assert.False(t, seen[v.ID], "duplicate vector id %s", v.ID)
		seen[v.ID] = true
	}
}

func TestPaillierTextbookKeyMatchesWorkedExample(t *testing.T) {
	key := PaillierTextbookKey()
	assert.Equal(t, int64(126869), key.N.Int64())
	assert.Equal(t, int64(126144), key.Lambda.Int64())

	ctxt, err := paillier.Encrypt(key.Public(), big.NewInt(521))
	require.NoError(t, err)
	ptxt, err := paillier.Decrypt(key, ctxt)
	require.NoError(t, err)
	assert.Equal(t, int64(521), ptxt.Int64())
}
