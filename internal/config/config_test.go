package config_test

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevko/solana-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
	assert.Equal(t, "devnet", cfg.Cluster)
	assert.Equal(t, "confirmed", cfg.Commitment)
	assert.Equal(t, uint8(2), cfg.TokenDecimals)
	assert.Equal(t, "Lev", cfg.VanityPrefix)
	assert.Equal(t, 3, cfg.VanityTimeoutMinutes)

	assert.Equal(t, "8cUNp6LJGfjN3M1mwk537CfY2WBtYUYQNnf4hVtPx7AB", cfg.Addresses.Wallet.String())
	assert.Equal(t, "ExJmrjcJj3FuHNvswLkLmAxiEBGcdW5g9WnZqb8VjCiz", cfg.Addresses.TokenMint.String())
	assert.Equal(t, "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s", cfg.Addresses.MetadataProgram.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOLANA_CLUSTER", "testnet")
	t.Setenv("MIN_BALANCE_SOL", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Cluster)
	assert.Equal(t, "2", cfg.MinBalanceSOL)
}

func TestLoadInvalidAddress(t *testing.T) {
	t.Setenv("WALLET_ADDRESS", "not-an-address")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
	assert.Contains(t, err.Error(), "WALLET_ADDRESS")
}

func TestLoadInvalidCommitment(t *testing.T) {
	t.Setenv("COMMITMENT", "immediate")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestKeypairMissing(t *testing.T) {
	cfg := &config.Config{}

	_, err := cfg.Keypair()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestKeypairMalformedJSON(t *testing.T) {
	cfg := &config.Config{SecretKey: "[1, 2, oops"}

	_, err := cfg.Keypair()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestKeypairWrongLength(t *testing.T) {
	cfg := &config.Config{SecretKey: "[1, 2, 3]"}

	_, err := cfg.Keypair()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
	assert.Contains(t, err.Error(), "64")
}

func TestKeypairByteOutOfRange(t *testing.T) {
	raw := make([]int, 64)
	raw[10] = 300
	encoded, err := json.Marshal(raw)
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: string(encoded)}

	_, err = cfg.Keypair()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestKeypairCorruptedPublicHalf(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	raw := make([]int, len(key))
	for i, b := range key {
		raw[i] = int(b)
	}
	raw[40] ^= 0xff // flip a byte of the embedded public key

	encoded, err := json.Marshal(raw)
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: string(encoded)}

	_, err = cfg.Keypair()
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestKeypairRoundTrip(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	raw := make([]int, len(key))
	for i, b := range key {
		raw[i] = int(b)
	}
	encoded, err := json.Marshal(raw)
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: string(encoded)}

	parsed, err := cfg.Keypair()
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())
}
