package solana

import (
	"context"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/sirupsen/logrus"
)

// CreateTokenAccount gets or creates the associated token account of the
// configured wallet address for the configured mint. Creation is skipped
// when the account already exists; the address is deterministic either way.
func CreateTokenAccount(ctx context.Context, solanaClient *client.SolanaClient, cfg *config.Config) (*model.TokenAccountResult, error) {
	payer, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	mint := cfg.Addresses.TokenMint
	owner := cfg.Addresses.Wallet

	account, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, err
	}

	exists, err := solanaClient.AccountExists(ctx, account)
	if err != nil {
		return nil, err
	}

	if exists {
		logrus.WithField("account", account.String()).Info("associated token account already exists")
	} else {
		createInstruction := associatedtokenaccount.NewCreateInstruction(
			payer.PublicKey(),
			owner,
			mint,
		).Build()

		_, err = solanaClient.SendAndConfirm(
			ctx,
			[]solana.Instruction{createInstruction},
			payer.PublicKey(),
			[]solana.PrivateKey{payer},
		)
		if err != nil {
			return nil, err
		}
	}

	return &model.TokenAccountResult{
		Account:      account.String(),
		Owner:        owner.String(),
		Mint:         mint.String(),
		Created:      !exists,
		ExplorerLink: common.ExplorerAddressLink(account.String(), cfg.Cluster),
	}, nil
}
