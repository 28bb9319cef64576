package model

// KeypairResult represents the output of the generate/load keypair operations
type KeypairResult struct {
	PublicKey string // base58-encoded public key
	SecretKey []byte // full 64-byte private key; empty for load (already known to the operator)
	QR        string // terminal-renderable QR code of the public key, optional
}
