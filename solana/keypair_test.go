package solana

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevko/solana-cli/internal/config"
)

func secretKeyJSON(t *testing.T, key solana.PrivateKey) string {
	t.Helper()
	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	require.NoError(t, err)
	return string(raw)
}

func TestGenerateKeypair(t *testing.T) {
	result, err := GenerateKeypair()
	require.NoError(t, err)

	assert.Len(t, result.SecretKey, 64)
	key := solana.PrivateKey(result.SecretKey)
	assert.Equal(t, base58.Encode(key.PublicKey().Bytes()), result.PublicKey)
	assert.NotEmpty(t, result.QR)
}

func TestLoadKeypairMatchesSecret(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: secretKeyJSON(t, key)}

	result, err := LoadKeypair(cfg)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().String(), result.PublicKey)
	assert.Empty(t, result.SecretKey, "loading must not echo the secret back")
}

func TestLoadKeypairMalformedSecret(t *testing.T) {
	cfg := &config.Config{SecretKey: "definitely not a JSON array"}

	_, err := LoadKeypair(cfg)
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestLoadKeypairMissingSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := LoadKeypair(cfg)
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}
