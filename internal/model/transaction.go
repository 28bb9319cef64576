package model

// TransferResult represents the output of the send-sol operation
type TransferResult struct {
	From         string
	To           string
	AmountSOL    string
	Memo         string
	Signature    string
	ExplorerLink string
}

// MintResult represents the output of the create-token-mint operation
type MintResult struct {
	Mint         string
	Decimals     uint8
	ExplorerLink string
}

// TokenAccountResult represents the output of the create-token-account operation
type TokenAccountResult struct {
	Account      string
	Owner        string
	Mint         string
	Created      bool // false when the associated account already existed
	ExplorerLink string
}

// MintTokensResult represents the output of the mint-tokens operation
type MintTokensResult struct {
	Mint         string
	Destination  string
	Amount       string
	Signature    string
	ExplorerLink string
}

// MetadataResult represents the output of the create-token-metadata operation
type MetadataResult struct {
	Mint         string
	Metadata     string // metadata PDA
	Name         string
	Symbol       string
	Signature    string
	ExplorerLink string
}
