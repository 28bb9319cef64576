package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

const (
	confirmInitialInterval = 500 * time.Millisecond
	confirmMaxInterval     = 5 * time.Second
	confirmBackoffFactor   = 1.5
)

// SignatureStatusSource provides signature status lookups.
// *rpc.Client satisfies it.
type SignatureStatusSource interface {
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// ConfirmationTimeoutError is returned when a transaction did not reach
// the requested commitment level within the confirmation timeout. It is
// distinct from RPC errors: the transaction may still land later.
type ConfirmationTimeoutError struct {
	Signature  solana.Signature
	Commitment rpc.CommitmentType
	Elapsed    time.Duration
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("transaction %s not %s after %s", e.Signature, e.Commitment, e.Elapsed.Round(time.Millisecond))
}

var commitmentRank = map[rpc.ConfirmationStatusType]int{
	rpc.ConfirmationStatusProcessed: 0,
	rpc.ConfirmationStatusConfirmed: 1,
	rpc.ConfirmationStatusFinalized: 2,
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	wantRank, ok := commitmentRank[rpc.ConfirmationStatusType(want)]
	if !ok {
		wantRank = commitmentRank[rpc.ConfirmationStatusConfirmed]
	}
	return commitmentRank[status] >= wantRank
}

// waitForConfirmation polls signature status with backoff until the
// commitment level is reached, the timeout expires, or ctx is cancelled.
func waitForConfirmation(ctx context.Context, src SignatureStatusSource, sig solana.Signature, commitment rpc.CommitmentType, timeout time.Duration) error {
	start := time.Now()
	deadline := start.Add(timeout)
	interval := confirmInitialInterval

	for {
		out, err := src.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}

		if len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed on chain: %v", sig, status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, commitment) {
				logrus.WithFields(logrus.Fields{
					"signature": sig.String(),
					"elapsed":   time.Since(start).Round(time.Millisecond).String(),
				}).Debug("transaction confirmed")
				return nil
			}
		}

		if !time.Now().Add(interval).Before(deadline) {
			return &ConfirmationTimeoutError{
				Signature:  sig,
				Commitment: commitment,
				Elapsed:    time.Since(start),
			}
		}

		logrus.WithField("signature", sig.String()).Debug("transaction not confirmed yet, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		interval = time.Duration(float64(interval) * confirmBackoffFactor)
		if interval > confirmMaxInterval {
			interval = confirmMaxInterval
		}
	}
}
