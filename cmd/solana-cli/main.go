// solana-cli is a multi-function Solana devnet tool. Each invocation
// performs exactly one operation, selected by a boolean flag; with no flag
// set it does nothing and exits successfully.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/solana"
)

var version = "0.2.0"

type opFlags struct {
	generateKeypair     bool
	loadKeypair         bool
	checkBalance        bool
	findKeypair         bool
	sendSOL             bool
	createTokenMint     bool
	createTokenAccount  bool
	mintTokens          bool
	createTokenMetadata bool

	vanityPrefix   string
	timeoutMinutes int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &opFlags{}

	cmd := &cobra.Command{
		Use:          "solana-cli",
		Short:        "A multi-function Solana tool",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.generateKeypair, "generate-keypair", "g", false, "Generate a new keypair")
	f.BoolVarP(&flags.loadKeypair, "load-keypair", "l", false, "Load keypair from SECRET_KEY and print its public key")
	f.BoolVarP(&flags.checkBalance, "check-balance", "c", false, "Check balance and request an airdrop if required")
	f.BoolVarP(&flags.findKeypair, "find-keypair", "f", false, "Find a keypair whose public key starts with the configured prefix")
	f.BoolVarP(&flags.sendSOL, "send-sol", "s", false, "Send the configured amount of SOL to the configured wallet address")
	f.BoolVarP(&flags.createTokenMint, "create-token-mint", "m", false, "Create a new token mint")
	f.BoolVarP(&flags.createTokenAccount, "create-token-account", "a", false, "Create a new token account")
	f.BoolVarP(&flags.mintTokens, "mint-tokens", "t", false, "Mint some tokens")
	f.BoolVarP(&flags.createTokenMetadata, "create-token-metadata", "d", false, "Create some token metadata")

	f.StringVar(&flags.vanityPrefix, "prefix", "", "Vanity prefix for --find-keypair (default: VANITY_PREFIX)")
	f.IntVar(&flags.timeoutMinutes, "timeout-minutes", -1, "Search budget in minutes for --find-keypair (default: VANITY_TIMEOUT_MINUTES)")

	cmd.MarkFlagsMutuallyExclusive(
		"generate-keypair",
		"load-keypair",
		"check-balance",
		"find-keypair",
		"send-sol",
		"create-token-mint",
		"create-token-account",
		"mint-tokens",
		"create-token-metadata",
	)

	return cmd
}

func run(ctx context.Context, flags *opFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return &config.Error{Message: fmt.Sprintf("invalid LOG_LEVEL %q", cfg.LogLevel), Err: err}
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	switch {
	case flags.generateKeypair:
		return runGenerateKeypair()
	case flags.loadKeypair:
		return runLoadKeypair(cfg)
	case flags.checkBalance:
		return runCheckBalance(ctx, cfg)
	case flags.findKeypair:
		return runFindKeypair(flags, cfg)
	case flags.sendSOL:
		return runSendSOL(ctx, cfg)
	case flags.createTokenMint:
		return runCreateTokenMint(ctx, cfg)
	case flags.createTokenAccount:
		return runCreateTokenAccount(ctx, cfg)
	case flags.mintTokens:
		return runMintTokens(ctx, cfg)
	case flags.createTokenMetadata:
		return runCreateTokenMetadata(ctx, cfg)
	default:
		// No operation requested: do nothing.
		return nil
	}
}

func newSolanaClient(cfg *config.Config) (*client.SolanaClient, error) {
	return client.NewSolanaClient(
		cfg.RPCURL,
		cfg.Commitment,
		time.Duration(cfg.ConfirmTimeoutSeconds)*time.Second,
	)
}

// opFailure implements the exit-code policy: configuration errors abort
// the process, RPC/operation failures are reported and the process exits
// normally.
func opFailure(operation string, err error) error {
	if config.IsConfigError(err) {
		return err
	}
	fmt.Printf("%s failed due to: %v\n", operation, err)
	return nil
}

func runGenerateKeypair() error {
	result, err := solana.GenerateKeypair()
	if err != nil {
		return err
	}
	fmt.Printf("The public key is: %s\n", result.PublicKey)
	fmt.Printf("The secret key is: %v\n", result.SecretKey)
	fmt.Print(result.QR)
	fmt.Println("✅ Finished!")
	return nil
}

func runLoadKeypair(cfg *config.Config) error {
	result, err := solana.LoadKeypair(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Public key: %s\n", result.PublicKey)
	return nil
}

func runCheckBalance(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("⚡️ Connected to %s\n", cfg.Cluster)

	result, err := solana.CheckBalance(ctx, solanaClient, client.NewCoinGeckoClient(), cfg)
	if err != nil {
		return opFailure("Checking balance", err)
	}

	if result.Airdropped {
		fmt.Println("Airdrop complete")
	} else {
		fmt.Println("No airdrop required")
	}
	fmt.Printf("💰 The balance for the wallet at address %s is: %s SOL\n", result.Address, result.SOL)
	if result.USD != "" {
		fmt.Printf("That is about %s USD\n", result.USD)
	}
	return nil
}

func runFindKeypair(flags *opFlags, cfg *config.Config) error {
	prefix := flags.vanityPrefix
	if prefix == "" {
		prefix = cfg.VanityPrefix
	}
	minutes := flags.timeoutMinutes
	if minutes < 0 {
		minutes = cfg.VanityTimeoutMinutes
	}
	if minutes < 0 {
		return &config.Error{Message: "vanity search budget must not be negative"}
	}

	result, err := solana.FindVanityKeypair(prefix, time.Duration(minutes)*time.Minute)
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Printf("⏰ Time out! The public key starting with '%s' was not found within %d minutes.\n", result.Prefix, minutes)
		return nil
	}

	fmt.Printf("⌛ Found matching keypair in %d second(s) or %.2f minute(s)!\n",
		int(result.Elapsed.Seconds()), result.Elapsed.Minutes())
	fmt.Printf("The public key is: %s\n", result.PublicKey)
	fmt.Printf("The secret key is: %v\n", result.SecretKey)
	fmt.Println("✅ Finished!")
	return nil
}

func runSendSOL(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}

	result, err := solana.SendSOL(ctx, solanaClient, cfg)
	if err != nil {
		return opFailure("Sending SOL", err)
	}

	fmt.Printf("🔑 Our public key is: %s\n", result.From)
	fmt.Printf("💸 Sent %s SOL to %s\n", result.AmountSOL, result.To)
	fmt.Printf("📝 memo is: %s\n", result.Memo)
	fmt.Printf("✅ Transaction confirmed, signature: %s!\n", result.Signature)
	fmt.Printf("Explorer: %s\n", result.ExplorerLink)
	return nil
}

func runCreateTokenMint(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}

	result, err := solana.CreateTokenMint(ctx, solanaClient, cfg)
	if err != nil {
		return opFailure("Creating token mint", err)
	}

	fmt.Printf("✅ Token Mint: %s\n", result.ExplorerLink)
	return nil
}

func runCreateTokenAccount(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}

	result, err := solana.CreateTokenAccount(ctx, solanaClient, cfg)
	if err != nil {
		return opFailure("Creating token account", err)
	}

	fmt.Printf("Token Account: %s\n", result.Account)
	if result.Created {
		fmt.Printf("✅ Created token account: %s\n", result.ExplorerLink)
	} else {
		fmt.Printf("✅ Token account already exists: %s\n", result.ExplorerLink)
	}
	return nil
}

func runMintTokens(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}

	result, err := solana.MintTokens(ctx, solanaClient, cfg)
	if err != nil {
		return opFailure("Minting tokens", err)
	}

	fmt.Printf("✅ Success! Mint Token Transaction: %s\n", result.ExplorerLink)
	return nil
}

func runCreateTokenMetadata(ctx context.Context, cfg *config.Config) error {
	solanaClient, err := newSolanaClient(cfg)
	if err != nil {
		return err
	}

	result, err := solana.CreateTokenMetadata(ctx, solanaClient, cfg)
	if err != nil {
		return opFailure("Creating token metadata", err)
	}

	fmt.Printf("✅ Look at the token mint again: %s\n", result.ExplorerLink)
	return nil
}
