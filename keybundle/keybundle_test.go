package keybundle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		"encrypt":     Attrs{"type": "block", "bits": 256},
		"hmac":        Attrs{"type": "block", "bits": 256},
		"homomorphic": Attrs{"type": "paillier", "bits": 128},
	}
}

func TestGenerateProducesOneEntryPerName(t *testing.T) {
	bundle, err := Generate(testSchema())
	require.NoError(t, err)
	require.Len(t, bundle, 3)

	assert.Equal(t, TypeBlock, bundle["encrypt"].Type)
	assert.Len(t, bundle["encrypt"].Block, 32)
	assert.Equal(t, TypePaillier, bundle["homomorphic"].Type)
	require.NotNil(t, bundle["homomorphic"].PaillierPriv)
}

func TestGenerateDefaultsTypeAndBits(t *testing.T) {
	bundle, err := Generate(Schema{"seed": Attrs{}})
	require.NoError(t, err)
	assert.Equal(t, TypeBlock, bundle["seed"].Type)
	assert.Len(t, bundle["seed"].Block, DefaultBits/8)
}

func TestSchemaRejectsUnknownAttribute(t *testing.T) {
	_, err := Generate(Schema{"seed": Attrs{"wat": true}})
	require.Error(t, err)
}

func TestSchemaRejectsBadType(t *testing.T) {
	_, err := Generate(Schema{"seed": Attrs{"type": "stream"}})
	require.Error(t, err)
}

func TestKeyfileRoundTrip(t *testing.T) {
	bundle, err := Generate(testSchema())
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "keyfile.json")
	require.NoError(t, Write(bundle, path))

	loaded, err := Read(path)
	require.NoError(t, err)

	require.Equal(t, bundle["encrypt"].Block, loaded["encrypt"].Block)
	require.Equal(t, bundle["hmac"].Block, loaded["hmac"].Block)

	origPriv := bundle["homomorphic"].PaillierPriv
	loadedPriv := loaded["homomorphic"].PaillierPriv
	require.NotNil(t, loadedPriv)
	assert.Equal(t, origPriv.N, loadedPriv.N)
	assert.Equal(t, origPriv.G, loadedPriv.G)
	assert.Equal(t, origPriv.Lambda, loadedPriv.Lambda)
	assert.Equal(t, origPriv.Mu, loadedPriv.Mu)
}

func TestWriteLeavesNoTempFileBehind(t *testing.T) {
	bundle, err := Generate(testSchema())
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "keyfile.json")
	require.NoError(t, Write(bundle, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keyfile.json", entries[0].Name())
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := Read(path)
	require.Error(t, err)
}

func TestPostdeserializeRejectsWrongArity(t *testing.T) {
	raw := map[string]json.RawMessage{
		"homomorphic": json.RawMessage(`{"paillier": ["1", "2", "3"]}`),
	}
	_, err := Postdeserialize(raw)
	require.Error(t, err)
}

func TestPostdeserializeRejectsBadBase64(t *testing.T) {
	raw := map[string]json.RawMessage{
		"encrypt": json.RawMessage(`"not-valid-base64!!"`),
	}
	_, err := Postdeserialize(raw)
	require.Error(t, err)
}

func TestFingerprintStableAndDistinguishing(t *testing.T) {
	bundleA, err := Generate(testSchema())
	require.NoError(t, err)
	bundleB, err := Generate(testSchema())
	require.NoError(t, err)

	fpA1 := Fingerprint(bundleA)
	fpA2 := Fingerprint(bundleA)
	fpB := Fingerprint(bundleB)

	assert.Equal(t, fpA1, fpA2)
	assert.NotEqual(t, fpA1, fpB)
}

func TestLifecycleTracksReadsAndTrail(t *testing.T) {
	lc := NewLifecycle()
	lc.Touch()
	lc.Touch()
	assert.EqualValues(t, 2, lc.Reads())

	trail := lc.Trail()
	require.Len(t, trail, 1)
	assert.Equal(t, EventGenerated, trail[0].Event)
}
