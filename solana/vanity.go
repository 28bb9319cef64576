package solana

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// base58Alphabet is the bitcoin-style alphabet Solana addresses use.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// KeypairGenerator produces a fresh random keypair. It is a function so
// tests can substitute a deterministic source.
type KeypairGenerator func() (solana.PrivateKey, error)

// FindVanityKeypair searches for a keypair whose base58-encoded public key
// starts with prefix, giving up once the wall-clock budget is spent.
// A timeout is reported through the result, not as an error.
func FindVanityKeypair(prefix string, budget time.Duration) (*model.VanityResult, error) {
	generate := func() (solana.PrivateKey, error) {
		return solana.NewRandomPrivateKey()
	}
	return findVanityKeypair(prefix, budget, generate, time.Now)
}

func findVanityKeypair(prefix string, budget time.Duration, generate KeypairGenerator, now func() time.Time) (*model.VanityResult, error) {
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}

	start := now()
	deadline := start.Add(budget)

	for {
		// Deadline first: a zero budget must time out without ever
		// reporting a match.
		if !now().Before(deadline) {
			return &model.VanityResult{
				Found:   false,
				Prefix:  prefix,
				Elapsed: now().Sub(start),
				Budget:  budget,
			}, nil
		}

		key, err := generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate keypair: %w", err)
		}

		encoded := base58.Encode(key.PublicKey().Bytes())
		if strings.HasPrefix(encoded, prefix) {
			return &model.VanityResult{
				Found:     true,
				Prefix:    prefix,
				PublicKey: encoded,
				SecretKey: key,
				Elapsed:   now().Sub(start),
				Budget:    budget,
			}, nil
		}
	}
}

// validatePrefix rejects prefixes that can never match an encoded key
func validatePrefix(prefix string) error {
	if prefix == "" {
		return &config.Error{Message: "vanity prefix must not be empty"}
	}
	for _, r := range prefix {
		if !strings.ContainsRune(base58Alphabet, r) {
			return &config.Error{Message: fmt.Sprintf("vanity prefix contains %q which is not a base58 character", r)}
		}
	}
	return nil
}
