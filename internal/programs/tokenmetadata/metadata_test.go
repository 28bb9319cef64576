package tokenmetadata

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	testMint      = solana.MustPublicKeyFromBase58("ExJmrjcJj3FuHNvswLkLmAxiEBGcdW5g9WnZqb8VjCiz")
)

func buildTestInstruction(t *testing.T) *solana.GenericInstruction {
	t.Helper()

	payer := solana.NewWallet().PublicKey()
	metadata, _, err := FindMetadataAddress(testProgramID, testMint)
	require.NoError(t, err)

	inst, err := CreateMetadataAccountV3{
		ProgramID:       testProgramID,
		Metadata:        metadata,
		Mint:            testMint,
		MintAuthority:   payer,
		Payer:           payer,
		UpdateAuthority: payer,
		Args: CreateMetadataAccountArgsV3{
			Data: DataV2{
				Name:   "AB",
				Symbol: "S",
				URI:    "u",
			},
			IsMutable: true,
		},
	}.Build()
	require.NoError(t, err)
	return inst
}

func TestCreateMetadataAccountV3Accounts(t *testing.T) {
	inst := buildTestInstruction(t)

	assert.Equal(t, testProgramID, inst.ProgramID())

	accounts := inst.Accounts()
	require.Len(t, accounts, 6)

	// metadata: writable, not a signer
	assert.True(t, accounts[0].IsWritable)
	assert.False(t, accounts[0].IsSigner)
	// mint: read only
	assert.Equal(t, testMint, accounts[1].PublicKey)
	assert.False(t, accounts[1].IsWritable)
	assert.False(t, accounts[1].IsSigner)
	// mint authority: signer
	assert.True(t, accounts[2].IsSigner)
	// payer: writable signer
	assert.True(t, accounts[3].IsWritable)
	assert.True(t, accounts[3].IsSigner)
	// update authority: signer
	assert.True(t, accounts[4].IsSigner)
	// system program last
	assert.Equal(t, solana.SystemProgramID, accounts[5].PublicKey)
}

func TestCreateMetadataAccountV3Data(t *testing.T) {
	inst := buildTestInstruction(t)

	data, err := inst.Data()
	require.NoError(t, err)

	expected := []byte{
		33,                    // instruction discriminator
		2, 0, 0, 0, 'A', 'B', // name
		1, 0, 0, 0, 'S', // symbol
		1, 0, 0, 0, 'u', // uri
		0, 0, // seller fee basis points (u16)
		0, // creators: None
		0, // collection: None
		0, // uses: None
		1, // is_mutable
		0, // collection_details: None
	}
	assert.Equal(t, expected, data)
}

func TestFindMetadataAddress(t *testing.T) {
	addr, _, err := FindMetadataAddress(testProgramID, testMint)
	require.NoError(t, err)
	assert.False(t, addr.IsZero())

	otherMint := solana.NewWallet().PublicKey()
	other, _, err := FindMetadataAddress(testProgramID, otherMint)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other, "different mints must map to different metadata accounts")
}
