package model

import "time"

// VanityResult represents the outcome of a vanity keypair search.
// A timeout is a negative search result, not an error.
type VanityResult struct {
	Found     bool
	Prefix    string
	PublicKey string // base58, set only when Found
	SecretKey []byte // full 64-byte private key, set only when Found
	Elapsed   time.Duration
	Budget    time.Duration
}
