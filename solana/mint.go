package solana

import (
	"context"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// mintAccountSize is the byte size of an SPL token mint account
const mintAccountSize = 82

// CreateTokenMint creates a new mint with the configured number of
// decimals. The loaded keypair pays for the account and becomes the mint
// authority; no freeze authority is set.
func CreateTokenMint(ctx context.Context, solanaClient *client.SolanaClient, cfg *config.Config) (*model.MintResult, error) {
	payer, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	mint := solana.NewWallet()

	rent, err := solanaClient.MinimumBalanceForRentExemption(ctx, mintAccountSize)
	if err != nil {
		return nil, err
	}

	createAccountInstruction := system.NewCreateAccountInstruction(
		rent,
		mintAccountSize,
		solana.TokenProgramID,
		payer.PublicKey(),
		mint.PublicKey(),
	).Build()

	initializeMintInstruction := token.NewInitializeMintInstructionBuilder().
		SetDecimals(cfg.TokenDecimals).
		SetMintAuthority(payer.PublicKey()).
		SetMintAccount(mint.PublicKey()).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		Build()

	_, err = solanaClient.SendAndConfirm(
		ctx,
		[]solana.Instruction{createAccountInstruction, initializeMintInstruction},
		payer.PublicKey(),
		[]solana.PrivateKey{payer, mint.PrivateKey},
	)
	if err != nil {
		return nil, err
	}

	return &model.MintResult{
		Mint:         mint.PublicKey().String(),
		Decimals:     cfg.TokenDecimals,
		ExplorerLink: common.ExplorerAddressLink(mint.PublicKey().String(), cfg.Cluster),
	}, nil
}
