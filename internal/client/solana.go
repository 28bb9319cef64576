package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// rpcRequestsPerSecond bounds the request rate against public RPC nodes,
// which throttle aggressively on devnet.
const rpcRequestsPerSecond = 5

var commitments = map[string]rpc.CommitmentType{
	"processed": rpc.CommitmentProcessed,
	"confirmed": rpc.CommitmentConfirmed,
	"finalized": rpc.CommitmentFinalized,
}

// SolanaClient is a thin wrapper over the Solana JSON-RPC client exposing
// only the queries and submissions the CLI operations need.
type SolanaClient struct {
	rpcClient      *rpc.Client
	rpcURL         string
	commitment     rpc.CommitmentType
	confirmTimeout time.Duration
}

// NewSolanaClient creates a rate-limited Solana client for the given
// endpoint. commitment must be one of processed, confirmed or finalized.
func NewSolanaClient(rpcURL, commitment string, confirmTimeout time.Duration) (*SolanaClient, error) {
	level, ok := commitments[commitment]
	if !ok {
		return nil, fmt.Errorf("unknown commitment level %q", commitment)
	}

	rpcClient := rpc.NewWithCustomRPCClient(rpc.NewWithLimiter(rpcURL, rate.Every(time.Second), rpcRequestsPerSecond))

	return &SolanaClient{
		rpcClient:      rpcClient,
		rpcURL:         rpcURL,
		commitment:     level,
		confirmTimeout: confirmTimeout,
	}, nil
}

// Commitment returns the client's default commitment level
func (c *SolanaClient) Commitment() rpc.CommitmentType {
	return c.commitment
}

// Balance gets the SOL balance of an address in lamports
func (c *SolanaClient) Balance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	out, err := c.rpcClient.GetBalance(ctx, address, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return out.Value, nil
}

// RequestAirdrop requests test funds for an address and returns the
// airdrop transaction signature. The caller confirms it separately.
func (c *SolanaClient) RequestAirdrop(ctx context.Context, address solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpcClient.RequestAirdrop(ctx, address, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}
	logrus.WithField("signature", sig.String()).Debug("airdrop requested")
	return sig, nil
}

// LatestBlockhash gets a recent blockhash for transaction assembly
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	return recent.Value.Blockhash, nil
}

// MinimumBalanceForRentExemption gets the lamports needed to keep an
// account of the given size rent exempt
func (c *SolanaClient) MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	rent, err := c.rpcClient.GetMinimumBalanceForRentExemption(ctx, size, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get rent exemption: %w", err)
	}
	return rent, nil
}

// AccountExists reports whether an account exists on chain
func (c *SolanaClient) AccountExists(ctx context.Context, address solana.PublicKey) (bool, error) {
	out, err := c.rpcClient.GetAccountInfo(ctx, address)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get account info: %w", err)
	}
	return out != nil && out.Value != nil, nil
}

// SendAndConfirm assembles a transaction from the given instructions,
// signs it with the provided keys, submits it, and waits (bounded) for
// confirmation at the client's commitment level.
func (c *SolanaClient) SendAndConfirm(ctx context.Context, instructions []solana.Instruction, payer solana.PublicKey, signers []solana.PrivateKey) (solana.Signature, error) {
	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: c.commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	if err := c.Confirm(ctx, sig, c.commitment); err != nil {
		return sig, err
	}
	return sig, nil
}

// Confirm waits for a signature to reach the given commitment level,
// polling with backoff up to the client's confirmation timeout.
func (c *SolanaClient) Confirm(ctx context.Context, sig solana.Signature, commitment rpc.CommitmentType) error {
	return waitForConfirmation(ctx, c.rpcClient, sig, commitment, c.confirmTimeout)
}
