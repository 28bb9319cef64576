package solana

import (
	"context"
	"fmt"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// MintTokens mints the configured amount of the configured mint to the
// configured token account. The loaded keypair must be the mint authority.
func MintTokens(ctx context.Context, solanaClient *client.SolanaClient, cfg *config.Config) (*model.MintTokensResult, error) {
	authority, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	units, err := common.TokenToBaseUnits(cfg.MintAmount, cfg.TokenDecimals)
	if err != nil {
		return nil, &config.Error{Message: fmt.Sprintf("invalid MINT_AMOUNT %q", cfg.MintAmount), Err: err}
	}

	mintToInstruction := token.NewMintToInstruction(
		units,
		cfg.Addresses.TokenMint,
		cfg.Addresses.TokenAccount,
		authority.PublicKey(),
		[]solana.PublicKey{},
	).Build()

	sig, err := solanaClient.SendAndConfirm(
		ctx,
		[]solana.Instruction{mintToInstruction},
		authority.PublicKey(),
		[]solana.PrivateKey{authority},
	)
	if err != nil {
		return nil, err
	}

	return &model.MintTokensResult{
		Mint:         cfg.Addresses.TokenMint.String(),
		Destination:  cfg.Addresses.TokenAccount.String(),
		Amount:       cfg.MintAmount,
		Signature:    sig.String(),
		ExplorerLink: common.ExplorerTxLink(sig.String(), cfg.Cluster),
	}, nil
}
