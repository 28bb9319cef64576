package solana

import (
	"fmt"

	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/skip2/go-qrcode"
)

// GenerateKeypair generates a fresh keypair. The secret is returned for
// console display only and is never persisted.
func GenerateKeypair() (*model.KeypairResult, error) {
	wallet := solana.NewWallet()
	publicKey := base58.Encode(wallet.PublicKey().Bytes())

	qr, err := addressQR(publicKey)
	if err != nil {
		return nil, err
	}

	return &model.KeypairResult{
		PublicKey: publicKey,
		SecretKey: wallet.PrivateKey,
		QR:        qr,
	}, nil
}

// LoadKeypair parses the configured secret and reports its public key.
// No network access happens here.
func LoadKeypair(cfg *config.Config) (*model.KeypairResult, error) {
	key, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	return &model.KeypairResult{
		PublicKey: base58.Encode(key.PublicKey().Bytes()),
	}, nil
}

// addressQR renders an address as a terminal QR code
func addressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}
