// Package tokenmetadata builds instructions for the Metaplex token
// metadata program. Only CreateMetadataAccountV3 is implemented; argument
// structs follow the program's borsh layout.
package tokenmetadata

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// createMetadataAccountV3Discriminator is the instruction index in the
// program's instruction enum.
const createMetadataAccountV3Discriminator uint8 = 33

// Creator is one entry of the optional creators list of DataV2
type Creator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

// Collection marks metadata as part of an on-chain collection
type Collection struct {
	Verified bool
	Key      solana.PublicKey
}

// Uses describes the use-limit feature of a token
type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

// CollectionDetails is the optional sized-collection marker
type CollectionDetails struct {
	Enum borsh.Enum `borsh_enum:"true"`
	V1   struct {
		Size uint64
	}
}

// DataV2 is the metadata payload: display fields plus optional
// creator/collection/use settings. Nil pointers serialize as borsh None.
type DataV2 struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
	Collection           *Collection
	Uses                 *Uses
}

// CreateMetadataAccountArgsV3 is the borsh argument block following the
// instruction discriminator.
type CreateMetadataAccountArgsV3 struct {
	Data              DataV2
	IsMutable         bool
	CollectionDetails *CollectionDetails
}

// CreateMetadataAccountV3 creates the metadata account for a mint.
// Account order matches the program's expectation; the rent sysvar is
// optional and omitted.
type CreateMetadataAccountV3 struct {
	ProgramID       solana.PublicKey
	Metadata        solana.PublicKey
	Mint            solana.PublicKey
	MintAuthority   solana.PublicKey
	Payer           solana.PublicKey
	UpdateAuthority solana.PublicKey
	Args            CreateMetadataAccountArgsV3
}

// Build serializes the instruction into a form ready for inclusion in a
// transaction.
func (inst CreateMetadataAccountV3) Build() (*solana.GenericInstruction, error) {
	payload, err := borsh.Serialize(inst.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize metadata args: %w", err)
	}

	data := make([]byte, 0, 1+len(payload))
	data = append(data, createMetadataAccountV3Discriminator)
	data = append(data, payload...)

	accounts := solana.AccountMetaSlice{
		solana.Meta(inst.Metadata).WRITE(),
		solana.Meta(inst.Mint),
		solana.Meta(inst.MintAuthority).SIGNER(),
		solana.Meta(inst.Payer).WRITE().SIGNER(),
		solana.Meta(inst.UpdateAuthority).SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}

	return solana.NewInstruction(inst.ProgramID, accounts, data), nil
}

// FindMetadataAddress derives the metadata PDA for a mint:
// ["metadata", program_id, mint].
func FindMetadataAddress(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			programID.Bytes(),
			mint.Bytes(),
		},
		programID,
	)
}
