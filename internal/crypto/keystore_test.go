package crypto

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	blob, err := EncryptKey(testKey, "hunter2")
	require.NoError(t, err)

	got, err := DecryptKey(blob, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, testKey, got)
}

func TestEncryptKeyAcceptsBarePrefix(t *testing.T) {
	bare := testKey[2:]
	blob, err := EncryptKey(bare, "pw")
	require.NoError(t, err)

	got, err := DecryptKey(blob, "pw")
	require.NoError(t, err)
	assert.Equal(t, testKey, got)
}

func TestEncryptKeyRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"not hex", "0xzz"},
		{"too short", "0xdeadbeef"},
		{"too long", testKey + "ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncryptKey(tt.key, "pw")
			assert.Error(t, err)
		})
	}
}

func TestEncryptKeyRejectsEmptyPassword(t *testing.T) {
	_, err := EncryptKey(testKey, "")
	assert.Error(t, err)
}

func TestDecryptKeyWrongPassword(t *testing.T) {
	blob, err := EncryptKey(testKey, "correct")
	require.NoError(t, err)

	_, err = DecryptKey(blob, "wrong")
	assert.Error(t, err)
}

func TestDecryptKeyUnsupportedVersion(t *testing.T) {
	blob, err := EncryptKey(testKey, "pw")
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(blob, &stored))
	stored["version"] = 99
	mangled, err := json.Marshal(stored)
	require.NoError(t, err)

	_, err = DecryptKey(mangled, "pw")
	assert.ErrorContains(t, err, "version")
}

func TestSaveKeyAndResolveFromKeystore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "wallet.json")
	require.NoError(t, SaveKey(path, testKey, "pw"))

	key, source, err := ResolveKey(KeyConfig{
		EncryptedKeyPath: path,
		KeyPassword:      "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, testKey, key)
	assert.Equal(t, KeySourceKeystore, source)
}

func TestResolveKeyRawWinsOverKeystore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, SaveKey(path, testKey, "pw"))

	other := "0x" + "11" + testKey[4:]
	key, source, err := ResolveKey(KeyConfig{
		RawPrivateKey:    other,
		EncryptedKeyPath: path,
		KeyPassword:      "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, other, key)
	assert.Equal(t, KeySourceRaw, source)
}

func TestResolveKeyNoSource(t *testing.T) {
	_, _, err := ResolveKey(KeyConfig{})
	assert.ErrorIs(t, err, ErrNoKeySource)
}

func TestResolveKeyMissingFile(t *testing.T) {
	_, _, err := ResolveKey(KeyConfig{
		EncryptedKeyPath: filepath.Join(t.TempDir(), "nope.json"),
		KeyPassword:      "pw",
	})
	assert.Error(t, err)
}
