package config

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gagliardetto/solana-go"
)

// Error is a configuration or startup validation failure. It is kept
// distinct from RPC errors so that callers can abort before any network
// call is attempted.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigError checks if error is a configuration Error
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Config contains all configuration parameters for the tool.
// Defaults target the Solana devnet demo setup; every value can be
// overridden through the environment or a .env file.
type Config struct {
	RPCURL     string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	Cluster    string `envconfig:"SOLANA_CLUSTER" default:"devnet"`
	Commitment string `envconfig:"COMMITMENT" default:"confirmed"`

	// SecretKey is a JSON-encoded array of 64 bytes. It is only required
	// by operations that sign transactions; see Keypair().
	SecretKey string `envconfig:"SECRET_KEY"`

	WalletAddress     string `envconfig:"WALLET_ADDRESS" default:"8cUNp6LJGfjN3M1mwk537CfY2WBtYUYQNnf4hVtPx7AB"`
	TokenMint         string `envconfig:"TOKEN_MINT" default:"ExJmrjcJj3FuHNvswLkLmAxiEBGcdW5g9WnZqb8VjCiz"`
	TokenAccount      string `envconfig:"TOKEN_ACCOUNT" default:"CtWYrszfioSrDA8G9GTGMmwjcs1J6LFzTVkkByT5daYy"`
	MetadataProgramID string `envconfig:"TOKEN_METADATA_PROGRAM_ID" default:"metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"`
	MemoProgramID     string `envconfig:"MEMO_PROGRAM_ID" default:"MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"`

	AirdropAmountSOL string `envconfig:"AIRDROP_AMOUNT_SOL" default:"0.5"`
	MinBalanceSOL    string `envconfig:"MIN_BALANCE_SOL" default:"1.5"`
	SendAmountSOL    string `envconfig:"SEND_AMOUNT_SOL" default:"0.01"`
	MemoText         string `envconfig:"MEMO_TEXT" default:"Hello from Solana!"`

	TokenDecimals uint8  `envconfig:"TOKEN_DECIMALS" default:"2"`
	MintAmount    string `envconfig:"MINT_AMOUNT" default:"10"`

	TokenName   string `envconfig:"TOKEN_NAME" default:"Solana UA Bootcamp 2024-08-06"`
	TokenSymbol string `envconfig:"TOKEN_SYMBOL" default:"UAB-2"`
	TokenURI    string `envconfig:"TOKEN_URI" default:"https://arweave.net/1234"`

	VanityPrefix         string `envconfig:"VANITY_PREFIX" default:"Lev"`
	VanityTimeoutMinutes int    `envconfig:"VANITY_TIMEOUT_MINUTES" default:"3"`

	ConfirmTimeoutSeconds int `envconfig:"CONFIRM_TIMEOUT_SECONDS" default:"60"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Addresses holds the parsed form of the address fields above,
	// validated once at startup.
	Addresses Addresses `ignored:"true"`
}

// Addresses are the fixed addresses and program ids used by the
// operations, parsed and validated at load time.
type Addresses struct {
	Wallet          solana.PublicKey
	TokenMint       solana.PublicKey
	TokenAccount    solana.PublicKey
	MetadataProgram solana.PublicKey
	MemoProgram     solana.PublicKey
}

var validCommitments = map[string]bool{
	"processed": true,
	"confirmed": true,
	"finalized": true,
}

// Load reads configuration from a .env file (if present) and the
// environment, then validates the fixed addresses. It is called once at
// process start; operations receive the resulting struct explicitly.
func Load() (*Config, error) {
	// A missing .env file is fine: values may come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, &Error{Message: "failed to process environment", Err: err}
	}

	if !validCommitments[cfg.Commitment] {
		return nil, &Error{Message: fmt.Sprintf("invalid COMMITMENT %q (want processed, confirmed or finalized)", cfg.Commitment)}
	}

	addrs, err := parseAddresses(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Addresses = *addrs

	return cfg, nil
}

func parseAddresses(cfg *Config) (*Addresses, error) {
	parse := func(name, value string) (solana.PublicKey, error) {
		key, err := solana.PublicKeyFromBase58(value)
		if err != nil {
			return solana.PublicKey{}, &Error{Message: fmt.Sprintf("invalid %s %q", name, value), Err: err}
		}
		return key, nil
	}

	var addrs Addresses
	var err error
	if addrs.Wallet, err = parse("WALLET_ADDRESS", cfg.WalletAddress); err != nil {
		return nil, err
	}
	if addrs.TokenMint, err = parse("TOKEN_MINT", cfg.TokenMint); err != nil {
		return nil, err
	}
	if addrs.TokenAccount, err = parse("TOKEN_ACCOUNT", cfg.TokenAccount); err != nil {
		return nil, err
	}
	if addrs.MetadataProgram, err = parse("TOKEN_METADATA_PROGRAM_ID", cfg.MetadataProgramID); err != nil {
		return nil, err
	}
	if addrs.MemoProgram, err = parse("MEMO_PROGRAM_ID", cfg.MemoProgramID); err != nil {
		return nil, err
	}
	return &addrs, nil
}

// Keypair parses SECRET_KEY into a full 64-byte Solana private key.
// Any failure is a configuration Error; no network access happens here.
func (c *Config) Keypair() (solana.PrivateKey, error) {
	if c.SecretKey == "" {
		return nil, &Error{Message: "SECRET_KEY not set: add it to the environment or .env"}
	}

	var raw []int
	if err := json.Unmarshal([]byte(c.SecretKey), &raw); err != nil {
		return nil, &Error{Message: "failed to parse SECRET_KEY as a JSON byte array", Err: err}
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, &Error{Message: fmt.Sprintf("SECRET_KEY must contain %d bytes, got %d", ed25519.PrivateKeySize, len(raw))}
	}

	key := make([]byte, len(raw))
	for i, b := range raw {
		if b < 0 || b > 255 {
			return nil, &Error{Message: fmt.Sprintf("SECRET_KEY byte %d out of range: %d", i, b)}
		}
		key[i] = byte(b)
	}

	// The second half of an ed25519 private key is the public key;
	// verify it matches the seed so a corrupted value fails here rather
	// than at signing time.
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	for i := range key {
		if key[i] != derived[i] {
			return nil, &Error{Message: "SECRET_KEY is not a valid ed25519 keypair"}
		}
	}

	return solana.PrivateKey(key), nil
}
