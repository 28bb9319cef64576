package solana

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

// CheckBalance reports the SOL balance of the configured wallet address,
// requesting an airdrop first when the balance is below the configured
// threshold. The USD value is best effort: a failed rate lookup is logged
// and the balance is still reported.
func CheckBalance(ctx context.Context, solanaClient *client.SolanaClient, rates *client.CoinGeckoClient, cfg *config.Config) (*model.BalanceResult, error) {
	address := cfg.Addresses.Wallet

	minLamports, err := common.SOLToLamports(cfg.MinBalanceSOL)
	if err != nil {
		return nil, &config.Error{Message: fmt.Sprintf("invalid MIN_BALANCE_SOL %q", cfg.MinBalanceSOL), Err: err}
	}
	airdropLamports, err := common.SOLToLamports(cfg.AirdropAmountSOL)
	if err != nil {
		return nil, &config.Error{Message: fmt.Sprintf("invalid AIRDROP_AMOUNT_SOL %q", cfg.AirdropAmountSOL), Err: err}
	}

	lamports, err := solanaClient.Balance(ctx, address)
	if err != nil {
		return nil, err
	}

	airdropped := false
	if lamports < minLamports {
		logrus.WithFields(logrus.Fields{
			"address": address.String(),
			"balance": common.LamportsToSOL(lamports),
		}).Info("balance below threshold, requesting airdrop")

		sig, err := solanaClient.RequestAirdrop(ctx, address, airdropLamports)
		if err != nil {
			return nil, err
		}
		// Airdrops only need the processed level before the balance
		// becomes visible to subsequent queries.
		if err := solanaClient.Confirm(ctx, sig, rpc.CommitmentProcessed); err != nil {
			return nil, fmt.Errorf("airdrop not confirmed: %w", err)
		}
		airdropped = true

		lamports, err = solanaClient.Balance(ctx, address)
		if err != nil {
			return nil, err
		}
	}

	sol := common.LamportsToSOL(lamports)

	usd := ""
	if rates != nil {
		rate, err := rates.GetSOLtoUSDRate()
		if err != nil {
			logrus.WithError(err).Warn("failed to get SOL/USD rate, reporting balance without it")
		} else {
			// Float is fine here: display only, never used for amounts.
			solFloat, _ := strconv.ParseFloat(sol, 64)
			rateFloat, _ := strconv.ParseFloat(rate, 64)
			usd = fmt.Sprintf("%.2f", solFloat*rateFloat)
		}
	}

	return &model.BalanceResult{
		Address:    address.String(),
		SOL:        sol,
		USD:        usd,
		Airdropped: airdropped,
	}, nil
}
