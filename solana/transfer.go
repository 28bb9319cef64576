package solana

import (
	"context"
	"fmt"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// SendSOL transfers the configured amount of SOL from the loaded keypair
// to the configured wallet address, attaching a memo instruction.
func SendSOL(ctx context.Context, solanaClient *client.SolanaClient, cfg *config.Config) (*model.TransferResult, error) {
	sender, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	lamports, err := common.SOLToLamports(cfg.SendAmountSOL)
	if err != nil {
		return nil, &config.Error{Message: fmt.Sprintf("invalid SEND_AMOUNT_SOL %q", cfg.SendAmountSOL), Err: err}
	}

	recipient := cfg.Addresses.Wallet

	transferInstruction := system.NewTransferInstruction(
		lamports,
		sender.PublicKey(),
		recipient,
	).Build()

	// The memo program takes the message as raw instruction data and no
	// accounts.
	memoInstruction := solana.NewInstruction(
		cfg.Addresses.MemoProgram,
		solana.AccountMetaSlice{},
		[]byte(cfg.MemoText),
	)

	sig, err := solanaClient.SendAndConfirm(
		ctx,
		[]solana.Instruction{transferInstruction, memoInstruction},
		sender.PublicKey(),
		[]solana.PrivateKey{sender},
	)
	if err != nil {
		return nil, err
	}

	return &model.TransferResult{
		From:         sender.PublicKey().String(),
		To:           recipient.String(),
		AmountSOL:    cfg.SendAmountSOL,
		Memo:         cfg.MemoText,
		Signature:    sig.String(),
		ExplorerLink: common.ExplorerTxLink(sig.String(), cfg.Cluster),
	}, nil
}
