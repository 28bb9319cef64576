package solana

import (
	"context"

	"github.com/mlevko/solana-cli/internal/client"
	"github.com/mlevko/solana-cli/internal/common"
	"github.com/mlevko/solana-cli/internal/config"
	"github.com/mlevko/solana-cli/internal/model"
	"github.com/mlevko/solana-cli/internal/programs/tokenmetadata"

	"github.com/gagliardetto/solana-go"
)

// CreateTokenMetadata creates the Metaplex metadata account for the
// configured mint with the configured name, symbol and URI. The loaded
// keypair acts as payer, mint authority and update authority.
func CreateTokenMetadata(ctx context.Context, solanaClient *client.SolanaClient, cfg *config.Config) (*model.MetadataResult, error) {
	user, err := cfg.Keypair()
	if err != nil {
		return nil, err
	}

	programID := cfg.Addresses.MetadataProgram
	mint := cfg.Addresses.TokenMint

	metadata, _, err := tokenmetadata.FindMetadataAddress(programID, mint)
	if err != nil {
		return nil, err
	}

	instruction, err := tokenmetadata.CreateMetadataAccountV3{
		ProgramID:       programID,
		Metadata:        metadata,
		Mint:            mint,
		MintAuthority:   user.PublicKey(),
		Payer:           user.PublicKey(),
		UpdateAuthority: user.PublicKey(),
		Args: tokenmetadata.CreateMetadataAccountArgsV3{
			Data: tokenmetadata.DataV2{
				Name:                 cfg.TokenName,
				Symbol:               cfg.TokenSymbol,
				URI:                  cfg.TokenURI,
				SellerFeeBasisPoints: 0,
			},
			IsMutable: true,
		},
	}.Build()
	if err != nil {
		return nil, err
	}

	sig, err := solanaClient.SendAndConfirm(
		ctx,
		[]solana.Instruction{instruction},
		user.PublicKey(),
		[]solana.PrivateKey{user},
	)
	if err != nil {
		return nil, err
	}

	return &model.MetadataResult{
		Mint:         mint.String(),
		Metadata:     metadata.String(),
		Name:         cfg.TokenName,
		Symbol:       cfg.TokenSymbol,
		Signature:    sig.String(),
		ExplorerLink: common.ExplorerAddressLink(mint.String(), cfg.Cluster),
	}, nil
}
